package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/bidscat/table"
)

// TableFormatter renders a human-readable grid, for terminal use rather
// than pipeline plumbing.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new grid formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the table.
func (f *TableFormatter) Format(t *table.Table) error {
	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(t.Header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.AppendBulk(t.Rows)
	tw.Render()
	return nil
}
