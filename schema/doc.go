// Package schema defines the BIDS filename grammar: the ordered set of
// entities a filename may carry, and the compiler that turns that set plus
// the suffix and extension vocabularies into a matcher for candidate paths.
//
// The entity order is significant twice over: it is the order entity slots
// appear in generated patterns, and it is the order entity columns appear in
// every table the reader builds.
//
// Basic usage:
//
//	s := schema.Builtin()
//	pat, err := schema.Compile(s, schema.DataTypes(), schema.DefaultSuffixes(), schema.DefaultExtensions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pat.Match("sub-01/anat/sub-01_T1w.nii.gz") // true
//
// Custom entities can be loaded from a YAML file and appended after the
// built-ins:
//
//	defs, err := schema.LoadEntityFile("entities.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err = s.Merge(defs)
package schema
