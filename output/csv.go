package output

import (
	"io"

	"github.com/vegasq/bidscat/table"
)

// CSVFormatter writes the delimited wire format with a configurable
// delimiter.
type CSVFormatter struct {
	writer io.Writer
	comma  rune
}

// NewCSVFormatter creates a comma-delimited formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w, comma: ','}
}

// NewTSVFormatter creates a tab-delimited formatter.
func NewTSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w, comma: '\t'}
}

// SetOutput sets the output writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes one header line and one line per row.
func (c *CSVFormatter) Format(t *table.Table) error {
	return t.Write(c.writer, c.comma)
}
