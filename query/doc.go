// Package query provides the transformations pipeline scripts run against a
// dataset table: projection, regex row filtering, NA handling, unique column
// extraction, sidecar attachment and sorted row iteration.
//
// Every operation is a pure function from table to table (or to a string
// slice); input tables are never mutated. The one stateful component is the
// Iterator, whose cursor is scoped to a single iteration session.
//
// Filter patterns are POSIX extended regular expressions matched anywhere in
// the cell value, awk-style; supply anchors for a full match:
//
//	out, err := query.Run(t, query.Options{
//	    Filters: []query.Filter{
//	        {Column: "task", Pattern: "rest"},
//	        {Column: "run", Pattern: "[1-3]"},
//	    },
//	    Columns: []string{"subject", "run", "path"},
//	})
//
// Row iteration with version-aware sorting:
//
//	it, err := query.Open(t, []query.SortKey{{Column: "run"}}, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    rec, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(rec["path"])
//	}
package query
