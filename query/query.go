package query

import (
	"fmt"
	"regexp"

	"github.com/vegasq/bidscat/table"
)

// Filter keeps a row only when the named column's value matches Pattern.
type Filter struct {
	Column string
	// Pattern is a POSIX extended regular expression matched anywhere in
	// the value, awk-style: "rest" matches the stored token "task-rest",
	// and anchors may be supplied explicitly when a full match is meant.
	Pattern string
}

// Options drives Run. Zero value means "all rows, all columns".
type Options struct {
	// Columns selects and reorders output columns, by name or 1-based
	// index; empty keeps all columns in their original order.
	Columns []string
	// Filters are ANDed together; a row must satisfy every one.
	Filters []Filter
	// DropNA drops any row whose value in one of these columns is NA,
	// evaluated after Filters and before projection.
	DropNA []string
}

// Run applies filters, NA-row dropping and projection, in that order, and
// returns a new table. An unknown column in any argument is reported as
// table.ErrColumnNotFound.
func Run(t *table.Table, opts Options) (*table.Table, error) {
	type compiledFilter struct {
		idx int
		re  *regexp.Regexp
	}
	filters := make([]compiledFilter, 0, len(opts.Filters))
	for _, f := range opts.Filters {
		idx, err := t.Resolve(f.Column)
		if err != nil {
			return nil, err
		}
		re, err := regexp.CompilePOSIX(f.Pattern)
		if err != nil {
			return nil, fmt.Errorf("filter on %q: invalid pattern %q: %w", f.Column, f.Pattern, err)
		}
		filters = append(filters, compiledFilter{idx: idx, re: re})
	}

	dropIdx := make([]int, 0, len(opts.DropNA))
	for _, col := range opts.DropNA {
		idx, err := t.Resolve(col)
		if err != nil {
			return nil, err
		}
		dropIdx = append(dropIdx, idx)
	}

	projIdx := make([]int, 0, len(opts.Columns))
	for _, col := range opts.Columns {
		idx, err := t.Resolve(col)
		if err != nil {
			return nil, err
		}
		projIdx = append(projIdx, idx)
	}

	var kept [][]string
rows:
	for _, row := range t.Rows {
		for _, f := range filters {
			if !f.re.MatchString(row[f.idx]) {
				continue rows
			}
		}
		for _, idx := range dropIdx {
			if row[idx] == table.NA {
				continue rows
			}
		}
		kept = append(kept, row)
	}

	if len(projIdx) == 0 {
		return &table.Table{Header: append([]string(nil), t.Header...), Rows: kept}, nil
	}

	header := make([]string, len(projIdx))
	for i, idx := range projIdx {
		header[i] = t.Header[idx]
	}
	rowsOut := make([][]string, len(kept))
	for i, row := range kept {
		projected := make([]string, len(projIdx))
		for j, idx := range projIdx {
			projected[j] = row[idx]
		}
		rowsOut[i] = projected
	}
	return &table.Table{Header: header, Rows: rowsOut}, nil
}
