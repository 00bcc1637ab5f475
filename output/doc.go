// Package output provides formatters for serializing dataset tables.
//
// # Supported formats
//
//   - CSV / TSV: the delimited wire format passed between pipeline stages
//   - JSON Lines: one object per row, NA rendered as null
//   - Table: human-readable grid for terminals
//   - Parquet: columnar export for analytics tooling
//
// # Basic usage
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(t); err != nil {
//	    log.Fatal(err)
//	}
//
// Select a formatter by name, as the CLI does:
//
//	formatter, err := output.New("parquet", file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(t); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to different destinations
//
// All formatters write to an io.Writer and can be redirected with
// SetOutput:
//
//	var buf bytes.Buffer
//	formatter.SetOutput(&buf)
package output
