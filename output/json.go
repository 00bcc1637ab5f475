package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/bidscat/table"
)

// JSONLFormatter writes rows as JSON Lines, one object per row. The NA
// sentinel is rendered as JSON null.
type JSONLFormatter struct {
	writer io.Writer
}

// NewJSONLFormatter creates a new JSON Lines formatter.
func NewJSONLFormatter(w io.Writer) *JSONLFormatter {
	return &JSONLFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONLFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row.
func (j *JSONLFormatter) Format(t *table.Table) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range t.Rows {
		obj := make(map[string]interface{}, len(t.Header))
		for i, name := range t.Header {
			if row[i] == table.NA {
				obj[name] = nil
			} else {
				obj[name] = row[i]
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
