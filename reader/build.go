package reader

import (
	"github.com/vegasq/bidscat/schema"
	"github.com/vegasq/bidscat/table"
)

// BuildTable filters paths through the pattern, decomposes the survivors and
// stacks the records under the canonical header.
//
// Rows appear in the order their paths appear in the input, so for a fixed
// path list and schema the output is identical on every run. Rejected paths
// produce no row and no error.
func BuildTable(paths []string, pat *schema.Pattern, s *schema.Schema) *table.Table {
	t := table.New(Header(s))
	for _, p := range paths {
		if !pat.Match(p) {
			continue
		}
		// Decompose always yields a record of header width, so Append
		// cannot fail here.
		_ = t.Append(Decompose(p, pat, s))
	}
	return t
}
