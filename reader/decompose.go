package reader

import (
	"strings"

	"github.com/vegasq/bidscat/schema"
	"github.com/vegasq/bidscat/table"
)

// Fixed columns framing the entity columns in every record.
const (
	colDerivatives = "derivatives"
	colDataType    = "data_type"
	colSuffix      = "suffix"
	colExtension   = "extension"
	colPath        = "path"
)

// Header returns the canonical column order for tables built from s.
func Header(s *schema.Schema) []string {
	header := make([]string, 0, s.Len()+5)
	header = append(header, colDerivatives, colDataType)
	for _, def := range s.Entities() {
		header = append(header, def.Name)
	}
	return append(header, colSuffix, colExtension, colPath)
}

// Decompose splits one accepted path into a record in canonical column
// order. It must only be called on paths the pattern has accepted.
//
// Entity values are recorded as the literal key-value token from the
// filename ("sub-01", not "01"), so rows stay self-describing when a column
// is renamed downstream. Entities absent from the filename are NA. Output
// order is always schema order, never the order segments appeared in the
// filename.
func Decompose(p string, pat *schema.Pattern, s *schema.Schema) []string {
	base := p
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}

	// The extension is everything after the first dot of the filename. A
	// basename with an incidental dot before its true extension therefore
	// yields a longer-than-expected extension string; this permissive split
	// is long-standing behavior and preserved as such.
	stem, extension, hasExt := strings.Cut(base, ".")
	if !hasExt {
		extension = table.NA
	}

	record := make([]string, 0, s.Len()+5)
	record = append(record, derivativesPipeline(p), dataType(p, pat))

	entities := make(map[string]string, s.Len())
	segments := strings.Split(stem, "_")
	for _, seg := range segments[:len(segments)-1] {
		key, _, ok := strings.Cut(seg, "-")
		if !ok {
			continue
		}
		if _, known := s.Lookup(key); !known {
			// Unrecognized segments are ignored, never a failure.
			continue
		}
		entities[key] = seg
	}
	for _, def := range s.Entities() {
		if v, ok := entities[def.Key]; ok {
			record = append(record, v)
		} else {
			record = append(record, table.NA)
		}
	}

	suffix := segments[len(segments)-1]
	return append(record, suffix, extension, p)
}

// dataType derives the acquisition category from the parent directory name,
// matched against the data-type vocabulary in order; first match wins.
func dataType(p string, pat *schema.Pattern) string {
	parent := ""
	segments := strings.Split(p, "/")
	if len(segments) >= 2 {
		parent = segments[len(segments)-2]
	}
	for _, token := range pat.DataTypeTokens() {
		if parent == token {
			return token
		}
	}
	return table.NA
}

// derivativesPipeline extracts the pipeline name from a
// derivatives/<pipeline>/ path segment, if present.
func derivativesPipeline(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		if seg == "derivatives" && i+2 <= len(segments)-1 {
			return segments[i+1]
		}
	}
	return table.NA
}
