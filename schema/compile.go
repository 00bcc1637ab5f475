package schema

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Pattern is a compiled structural matcher for candidate paths.
//
// It decides acceptance only; it never extracts values. A path is accepted
// when its filename is zero or more key-value segments (each key drawn from
// the schema, each value matching the entity's declared format, each key at
// most once, in any order), then exactly one suffix from the vocabulary,
// then exactly one extension from the vocabulary. The longest extension in
// the vocabulary that suffixes the filename wins, so "nii.gz" is matched as
// one extension rather than split at the first dot.
type Pattern struct {
	values     map[string]*regexp.Regexp
	suffixes   map[string]struct{}
	extensions []string
	dataTypes  []string
}

// DataTypes returns the fixed, ordered vocabulary of acquisition directory
// names a data type may be derived from.
func DataTypes() []string {
	return []string{
		"anat", "func", "dwi", "fmap", "perf", "meg", "eeg", "ieeg",
		"beh", "pet", "micr", "nirs", "motion",
	}
}

// DefaultSuffixes returns the suffix vocabulary covering common acquisitions.
func DefaultSuffixes() []string {
	return []string{
		"T1w", "T2w", "T1rho", "T1map", "T2map", "T2star", "FLAIR",
		"PDw", "PDmap", "PDT2", "inplaneT1", "inplaneT2", "angio",
		"defacemask", "bold", "cbv", "sbref", "phase", "events",
		"physio", "stim", "dwi", "bval", "bvec", "phasediff",
		"phase1", "phase2", "magnitude", "magnitude1", "magnitude2",
		"fieldmap", "epi", "asl", "m0scan", "meg", "eeg", "ieeg",
		"channels", "electrodes", "coordsystem", "photo", "pet",
		"blood", "nirs", "optodes", "motion", "beh", "scans",
		"sessions", "participants", "description",
	}
}

// DefaultExtensions returns the extension vocabulary. Multi-part extensions
// such as "nii.gz" are listed whole.
func DefaultExtensions() []string {
	return []string{
		"nii", "nii.gz", "json", "tsv", "tsv.gz", "bval", "bvec",
		"fif", "edf", "bdf", "set", "vhdr", "vmrk", "eeg", "snirf",
		"jpg", "png", "svg", "txt",
	}
}

// Compile turns a schema plus the data-type, suffix and extension
// vocabularies into a Pattern.
//
// Format mistakes in the schema and empty vocabularies are reported here, at
// compile time, rather than on first use against a path.
func Compile(s *Schema, dataTypes, suffixes, extensions []string) (*Pattern, error) {
	if s == nil || s.Len() == 0 {
		return nil, fmt.Errorf("cannot compile an empty schema")
	}
	if len(suffixes) == 0 {
		return nil, fmt.Errorf("suffix vocabulary is empty")
	}
	if len(extensions) == 0 {
		return nil, fmt.Errorf("extension vocabulary is empty")
	}

	p := &Pattern{
		values:     make(map[string]*regexp.Regexp, s.Len()),
		suffixes:   make(map[string]struct{}, len(suffixes)),
		extensions: append([]string(nil), extensions...),
		dataTypes:  append([]string(nil), dataTypes...),
	}

	for _, def := range s.entities {
		expr, err := valueExpr(def)
		if err != nil {
			return nil, err
		}
		re, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", def.Key, err)
		}
		p.values[def.Key] = re
	}
	for _, suf := range suffixes {
		p.suffixes[suf] = struct{}{}
	}

	// Longest-first so extension matching never splits "nii.gz" at the
	// first dot.
	sort.SliceStable(p.extensions, func(i, j int) bool {
		return len(p.extensions[i]) > len(p.extensions[j])
	})

	return p, nil
}

func valueExpr(def EntityDef) (string, error) {
	switch def.Format {
	case Label:
		return "[a-zA-Z0-9]+", nil
	case Index:
		return "[0-9]+", nil
	case Enum:
		quoted := make([]string, len(def.Values))
		for i, v := range def.Values {
			quoted[i] = regexp.QuoteMeta(v)
		}
		return strings.Join(quoted, "|"), nil
	default:
		return "", fmt.Errorf("entity %q has unknown format %d", def.Key, def.Format)
	}
}

// DataTypeTokens returns the data-type vocabulary the pattern was compiled
// with, in matching order.
func (p *Pattern) DataTypeTokens() []string {
	return append([]string(nil), p.dataTypes...)
}

// Match reports whether the path's filename belongs to the grammar.
//
// Segment order in the filename need not follow schema order; acceptance is
// deliberately permissive. A non-matching path is simply not part of the
// dataset, never an error.
func (p *Pattern) Match(path string) bool {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}

	stem, ok := p.trimExtension(base)
	if !ok {
		return false
	}

	segments := strings.Split(stem, "_")
	suffix := segments[len(segments)-1]
	if _, ok := p.suffixes[suffix]; !ok {
		return false
	}

	seen := make(map[string]struct{}, len(segments)-1)
	for _, seg := range segments[:len(segments)-1] {
		key, value, ok := strings.Cut(seg, "-")
		if !ok {
			return false
		}
		re, known := p.values[key]
		if !known {
			return false
		}
		if _, dup := seen[key]; dup {
			return false
		}
		if !re.MatchString(value) {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// trimExtension strips the longest vocabulary extension from base.
func (p *Pattern) trimExtension(base string) (string, bool) {
	for _, ext := range p.extensions {
		tail := "." + ext
		if strings.HasSuffix(base, tail) && len(base) > len(tail) {
			return base[:len(base)-len(tail)], true
		}
	}
	return "", false
}
