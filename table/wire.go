package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Write serializes the table in the delimited wire format: one header line
// followed by one line per row, fields joined by delim (comma or tab).
//
// Missing values are written as the literal NA sentinel. Field values are
// expected never to contain the active delimiter; the decomposer cannot
// produce such values from valid filenames.
func (t *Table) Write(w io.Writer, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}
	return nil
}

// Read parses a table from the delimited wire format.
//
// The first line is the header; every following line must have the same
// field count. Ragged input is reported as ErrMalformedTable.
func Read(r io.Reader, delim rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header line", ErrMalformedTable)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	t := New(header)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformedTable, line, len(record), len(header))
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}
