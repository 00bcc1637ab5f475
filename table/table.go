// Package table defines the in-memory tabular representation of a scanned
// BIDS dataset: a shared header plus fixed-width string rows.
//
// Tables are value types. Query operations never mutate a table in place;
// they return new tables sharing row storage where possible. Because of
// this, concurrent read-only use of a table is safe without locking.
package table

import (
	"errors"
	"fmt"
	"strconv"
)

// NA is the sentinel value standing in for "column not present for this row".
const NA = "NA"

// Errors reported by table operations. Callers branch on them with errors.Is.
var (
	// ErrColumnNotFound indicates a query, sort or extract operation
	// referenced a column that does not exist in the header.
	ErrColumnNotFound = errors.New("column not found")

	// ErrMalformedTable indicates a row's field count does not match the
	// header, typically because non-conforming wire data was read.
	ErrMalformedTable = errors.New("malformed table")
)

// Table is a header plus rows of equal width.
//
// Invariant: every row has exactly len(Header) fields. Row order is
// file-discovery order unless a caller explicitly sorts.
type Table struct {
	Header []string
	Rows   [][]string
}

// New creates an empty table with the given header.
func New(header []string) *Table {
	return &Table{Header: header}
}

// Append adds a row. The row must match the header width.
func (t *Table) Append(row []string) error {
	if len(row) != len(t.Header) {
		return fmt.Errorf("%w: row has %d fields, header has %d", ErrMalformedTable, len(row), len(t.Header))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Resolve maps a column reference to a header position.
//
// Names are tried first and always take precedence: a column literally named
// "2" resolves by name, not by position. If no name matches and the
// reference is all digits, it is treated as a 1-based column index.
func (t *Table) Resolve(col string) (int, error) {
	for i, name := range t.Header {
		if name == col {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(col); err == nil {
		if n >= 1 && n <= len(t.Header) {
			return n - 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, col)
}

// Validate checks the row-width invariant and reports the first violation.
func (t *Table) Validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("%w: row %d has %d fields, header has %d", ErrMalformedTable, i+1, len(row), len(t.Header))
		}
	}
	return nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{Header: append([]string(nil), t.Header...)}
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}
