package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders rows as an aligned terminal table.
type TableFormatter struct {
	writer  io.Writer
	columns []string
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// SetColumns fixes the column display order.
func (t *TableFormatter) SetColumns(columns []string) {
	t.columns = columns
}

// Format renders rows as a table with a header row.
func (t *TableFormatter) Format(rows []map[string]interface{}) error {
	columns := resultColumns(rows, t.columns)

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(false)

	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = formatValue(row[col])
		}
		table.Append(record)
	}

	table.Render()
	return nil
}
