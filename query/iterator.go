package query

import (
	"sort"

	"github.com/vegasq/bidscat/table"
)

// SortKey orders rows by one column.
type SortKey struct {
	Column string
	Desc   bool
}

// Record is one row keyed by header column names.
type Record map[string]string

// Iterator is a resumable cursor over a table's rows in sorted order.
//
// Open computes the full ordering once; Next then walks it without
// re-sorting on every resumed call. There is no rewind: iterate again by
// calling Open again. Since tables are immutable the second ordering is
// identical, the sort cost is simply paid twice.
type Iterator struct {
	header []string
	rows   [][]string
	pos    int
}

// Open validates the sort keys against the table and returns an iterator
// positioned before the first row.
//
// With no keys, rows sort by all columns left to right, ascending.
// Comparison is version-aware: embedded digit runs compare as integers, so
// "run-2" orders before "run-10". Ties keep their original row order; later
// columns are not consulted unless supplied as explicit keys. reverse flips
// the fully computed order. An unknown key column is
// table.ErrColumnNotFound.
func Open(t *table.Table, keys []SortKey, reverse bool) (*Iterator, error) {
	indices := make([]int, 0, len(t.Header))
	descending := make([]bool, 0, len(t.Header))
	if len(keys) == 0 {
		for i := range t.Header {
			indices = append(indices, i)
			descending = append(descending, false)
		}
	} else {
		for _, key := range keys {
			idx, err := t.Resolve(key.Column)
			if err != nil {
				return nil, err
			}
			indices = append(indices, idx)
			descending = append(descending, key.Desc)
		}
	}

	rows := append([][]string(nil), t.Rows...)
	sort.SliceStable(rows, func(a, b int) bool {
		for k, idx := range indices {
			c := versionCompare(rows[a][idx], rows[b][idx])
			if c == 0 {
				continue
			}
			if descending[k] {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	if reverse {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	return &Iterator{header: append([]string(nil), t.Header...), rows: rows}, nil
}

// Next returns the record at the cursor and advances. Once the rows are
// exhausted it returns ok=false, and keeps doing so on every further call.
func (it *Iterator) Next() (Record, bool) {
	if it.pos >= len(it.rows) {
		return nil, false
	}
	row := it.rows[it.pos]
	it.pos++
	rec := make(Record, len(it.header))
	for i, name := range it.header {
		rec[name] = row[i]
	}
	return rec, true
}

// HasNext reports whether another row remains without advancing the cursor.
func (it *Iterator) HasNext() bool {
	return it.pos < len(it.rows)
}
