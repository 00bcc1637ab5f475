package reader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ValueKind tags the shape of a decoded sidecar value.
type ValueKind int

const (
	// StringValue is a JSON string.
	StringValue ValueKind = iota
	// NumberValue is a JSON number.
	NumberValue
	// BoolValue is a JSON boolean.
	BoolValue
	// ArrayValue is a JSON array, flattened to string items.
	ArrayValue
	// ObjectValue is a nested JSON object kept as re-serialized text.
	ObjectValue
	// NullValue is a JSON null.
	NullValue
)

// Value is one decoded top-level sidecar value. The kind determines which
// field carries the payload.
type Value struct {
	Kind  ValueKind
	Str   string
	Num   float64
	Bool  bool
	Items []string
	Raw   string
}

// SidecarField pairs a top-level key with its decoded value, preserving
// document order.
type SidecarField struct {
	Key   string
	Value Value
}

// ReadSidecar decodes one JSON sidecar document into its top-level fields.
//
// The document must be a JSON object; anything else is an error. Nested
// objects are not descended into, they are kept as opaque re-serialized
// text. Field order follows the document.
func ReadSidecar(r io.Reader) ([]SidecarField, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read sidecar: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("sidecar is not a JSON object")
	}

	var fields []SidecarField
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read sidecar key: %w", err)
		}
		key := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to read value for %q: %w", key, err)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode value for %q: %w", key, err)
		}
		fields = append(fields, SidecarField{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read sidecar: %w", err)
	}
	return fields, nil
}

func decodeValue(raw json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Value{}, fmt.Errorf("empty value")
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Value{}, err
		}
		return Value{Kind: StringValue, Str: s}, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return Value{}, err
		}
		return Value{Kind: BoolValue, Bool: b}, nil
	case 'n':
		return Value{Kind: NullValue}, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Value{}, err
		}
		flat := make([]string, len(items))
		for i, item := range items {
			flat[i] = itemString(item)
		}
		return Value{Kind: ArrayValue, Items: flat}, nil
	case '{':
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err != nil {
			return Value{}, err
		}
		return Value{Kind: ObjectValue, Raw: compact.String()}, nil
	default:
		num, err := strconv.ParseFloat(string(trimmed), 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q", trimmed)
		}
		return Value{Kind: NumberValue, Num: num}, nil
	}
}

// itemString renders one array element as text: strings verbatim, anything
// else in its compact JSON form.
func itemString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return string(trimmed)
	}
	return compact.String()
}

// String renders a value in a stable human-readable form, used when sidecar
// fields are surfaced in delimited output.
func (v Value) String() string {
	switch v.Kind {
	case StringValue:
		return v.Str
	case NumberValue:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case BoolValue:
		return strconv.FormatBool(v.Bool)
	case ArrayValue:
		return strings.Join(v.Items, ",")
	case ObjectValue:
		return v.Raw
	default:
		return "null"
	}
}
