package schema

import (
	"errors"
	"fmt"
)

// Format describes the value shape an entity accepts in a filename.
type Format int

const (
	// Label accepts one or more alphanumerics (e.g. "sub-control01").
	Label Format = iota
	// Index accepts one or more digits (e.g. "run-02").
	Index
	// Enum accepts one of a fixed set of literal values. Used by a few
	// special-cased entities such as part and mt.
	Enum
)

// EntityDef describes one named, optional key in the filename grammar.
type EntityDef struct {
	// Key is the short identifier used in filenames, e.g. "sub".
	Key string
	// Name is the long column name in tables, e.g. "subject".
	Name string
	// Format is the value shape.
	Format Format
	// Values holds the permitted literals when Format is Enum.
	Values []string
}

// Schema is an ordered, immutable sequence of entity definitions.
//
// Definition order is total: it fixes both the generated pattern order and
// the entity column order of every output table.
type Schema struct {
	entities []EntityDef
	byKey    map[string]int
}

// ErrDuplicateEntity indicates two entity definitions share a key.
var ErrDuplicateEntity = errors.New("duplicate entity key")

// New builds a schema from definitions in the given order.
func New(defs []EntityDef) (*Schema, error) {
	s := &Schema{
		entities: append([]EntityDef(nil), defs...),
		byKey:    make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		if def.Key == "" {
			return nil, fmt.Errorf("entity %d has an empty key", i)
		}
		if def.Name == "" {
			return nil, fmt.Errorf("entity %q has an empty display name", def.Key)
		}
		if def.Format == Enum && len(def.Values) == 0 {
			return nil, fmt.Errorf("entity %q is enumerated but lists no values", def.Key)
		}
		if _, dup := s.byKey[def.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntity, def.Key)
		}
		s.byKey[def.Key] = i
	}
	return s, nil
}

// Builtin returns the standard BIDS entity schema in canonical order.
func Builtin() *Schema {
	s, err := New(builtinEntities())
	if err != nil {
		// The built-in table is a compile-time constant; a failure here
		// is a programming error, not user input.
		panic(err)
	}
	return s
}

func builtinEntities() []EntityDef {
	return []EntityDef{
		{Key: "sub", Name: "subject", Format: Label},
		{Key: "ses", Name: "session", Format: Label},
		{Key: "task", Name: "task", Format: Label},
		{Key: "acq", Name: "acquisition", Format: Label},
		{Key: "ce", Name: "ceagent", Format: Label},
		{Key: "rec", Name: "reconstruction", Format: Label},
		{Key: "dir", Name: "direction", Format: Label},
		{Key: "run", Name: "run", Format: Index},
		{Key: "mod", Name: "modality", Format: Label},
		{Key: "echo", Name: "echo", Format: Index},
		{Key: "flip", Name: "flip", Format: Index},
		{Key: "inv", Name: "inv", Format: Index},
		{Key: "mt", Name: "mt", Format: Enum, Values: []string{"on", "off"}},
		{Key: "part", Name: "part", Format: Enum, Values: []string{"mag", "phase", "real", "imag"}},
		{Key: "recording", Name: "recording", Format: Label},
		{Key: "proc", Name: "proc", Format: Label},
		{Key: "space", Name: "space", Format: Label},
		{Key: "split", Name: "split", Format: Index},
		{Key: "res", Name: "resolution", Format: Label},
		{Key: "den", Name: "density", Format: Label},
		{Key: "label", Name: "label", Format: Label},
		{Key: "desc", Name: "description", Format: Label},
	}
}

// Entities returns the definitions in schema order.
func (s *Schema) Entities() []EntityDef {
	return append([]EntityDef(nil), s.entities...)
}

// Len returns the number of entities.
func (s *Schema) Len() int {
	return len(s.entities)
}

// Lookup finds an entity definition by filename key.
func (s *Schema) Lookup(key string) (EntityDef, bool) {
	i, ok := s.byKey[key]
	if !ok {
		return EntityDef{}, false
	}
	return s.entities[i], true
}

// Merge returns a new schema with defs appended after the existing entities.
//
// Relative order is preserved within each group. A def whose key collides
// with an existing entity is rejected.
func (s *Schema) Merge(defs []EntityDef) (*Schema, error) {
	merged := make([]EntityDef, 0, len(s.entities)+len(defs))
	merged = append(merged, s.entities...)
	merged = append(merged, defs...)
	return New(merged)
}
