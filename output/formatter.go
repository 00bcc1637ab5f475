package output

import (
	"fmt"
	"io"

	"github.com/vegasq/bidscat/table"
)

// Formatter defines the interface for table serializers.
type Formatter interface {
	// Format writes the table in the formatter's specific format.
	Format(t *table.Table) error

	// SetOutput changes the output writer.
	SetOutput(w io.Writer)
}

// New returns the formatter registered under name: "csv", "tsv", "jsonl",
// "table" or "parquet".
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "csv":
		return NewCSVFormatter(w), nil
	case "tsv":
		return NewTSVFormatter(w), nil
	case "jsonl":
		return NewJSONLFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	case "parquet":
		return NewParquetFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", name)
	}
}
