package query

import (
	"strings"

	"github.com/vegasq/bidscat/table"
)

// jsonExtension identifies metadata sidecar rows.
const jsonExtension = "json"

// joinKeySep never occurs in decomposed values, so concatenated keys cannot
// collide across column boundaries.
const joinKeySep = "\x1f"

// AttachSidecarPaths resolves the standard data/metadata pairing and returns
// the table with a json_path column appended.
//
// Two rows describe the same logical acquisition when they agree on every
// column except extension and path. A sidecar row (extension "json") that
// shares its key with at least one data row is folded into those rows: the
// sidecar row disappears and each matching data row gets json_path set to
// the sidecar's path. A sidecar with no matching data row is kept as its own
// row with json_path pointing at itself; it is presumed to be a
// dataset-level sidecar. Data rows without a sidecar get json_path NA.
//
// Sidecars inherited from parent directories per the BIDS inheritance
// principle are not resolved here; the pairing is structural key equality
// only.
func AttachSidecarPaths(t *table.Table) (*table.Table, error) {
	extIdx, err := t.Resolve("extension")
	if err != nil {
		return nil, err
	}
	pathIdx, err := t.Resolve("path")
	if err != nil {
		return nil, err
	}

	joinKey := func(row []string) string {
		parts := make([]string, 0, len(row)-2)
		for i, v := range row {
			if i == extIdx || i == pathIdx {
				continue
			}
			parts = append(parts, v)
		}
		return strings.Join(parts, joinKeySep)
	}

	sidecarByKey := make(map[string]string)
	dataKeys := make(map[string]struct{})
	for _, row := range t.Rows {
		key := joinKey(row)
		if row[extIdx] == jsonExtension {
			if _, dup := sidecarByKey[key]; !dup {
				sidecarByKey[key] = row[pathIdx]
			}
		} else {
			dataKeys[key] = struct{}{}
		}
	}

	out := &table.Table{Header: append(append([]string(nil), t.Header...), "json_path")}
	for _, row := range t.Rows {
		key := joinKey(row)
		if row[extIdx] == jsonExtension {
			if _, matched := dataKeys[key]; matched {
				// Folded into its data rows.
				continue
			}
			out.Rows = append(out.Rows, append(append([]string(nil), row...), row[pathIdx]))
			continue
		}
		jsonPath := table.NA
		if p, ok := sidecarByKey[key]; ok {
			jsonPath = p
		}
		out.Rows = append(out.Rows, append(append([]string(nil), row...), jsonPath))
	}
	return out, nil
}
