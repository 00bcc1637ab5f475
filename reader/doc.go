// Package reader turns a BIDS directory tree into an in-memory table.
//
// Walk enumerates candidate paths in deterministic order, the compiled
// pattern filters them, and Decompose splits each accepted path into one
// fixed-width record. BuildTable folds the records under the canonical
// header:
//
//	[derivatives, data_type] ++ entity display names (schema order) ++ [suffix, extension, path]
//
// Paths that do not match the grammar are silently skipped; rejection is the
// designed filtering mechanism, not a failure. The entire table is
// materialized in memory before any query runs, so the package suits
// datasets whose file count fits comfortably in memory.
//
// Basic usage:
//
//	s := schema.Builtin()
//	pat, err := schema.Compile(s, schema.DataTypes(), schema.DefaultSuffixes(), schema.DefaultExtensions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := reader.Walk("/data/ds000117")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t := reader.BuildTable(paths, pat, s)
//
// The package also decodes JSON metadata sidecars into tagged values; see
// ReadSidecar.
package reader
