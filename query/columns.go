package query

import (
	"github.com/vegasq/bidscat/table"
)

// DropEmptyColumns removes every column whose value is NA in all rows.
//
// A table with zero data rows is returned unchanged: with no rows there is
// no evidence any column is empty, and dropping everything would produce a
// degenerate headerless table. The operation is idempotent.
func DropEmptyColumns(t *table.Table) *table.Table {
	if len(t.Rows) == 0 {
		return &table.Table{Header: append([]string(nil), t.Header...)}
	}

	keep := make([]int, 0, len(t.Header))
	for i := range t.Header {
		for _, row := range t.Rows {
			if row[i] != table.NA {
				keep = append(keep, i)
				break
			}
		}
	}
	if len(keep) == len(t.Header) {
		return &table.Table{Header: append([]string(nil), t.Header...), Rows: t.Rows}
	}

	header := make([]string, len(keep))
	for i, idx := range keep {
		header[i] = t.Header[idx]
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out := make([]string, len(keep))
		for j, idx := range keep {
			out[j] = row[idx]
		}
		rows[i] = out
	}
	return &table.Table{Header: header, Rows: rows}
}

// ExtractColumn reads one column top to bottom.
//
// excludeNA removes NA entries before deduplication; unique keeps the first
// occurrence of each value, preserving encounter order. An unknown column on
// a table with at least one data row is table.ErrColumnNotFound; on an empty
// table the result is an empty sequence with no error, so scripts can probe
// columns of not-yet-populated tables.
func ExtractColumn(t *table.Table, col string, unique, excludeNA bool) ([]string, error) {
	idx, err := t.Resolve(col)
	if err != nil {
		if len(t.Rows) == 0 {
			return nil, nil
		}
		return nil, err
	}

	var out []string
	seen := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		v := row[idx]
		if excludeNA && v == table.NA {
			continue
		}
		if unique {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
		}
		out = append(out, v)
	}
	return out, nil
}
