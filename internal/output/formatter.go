// Package output provides formatters for exporting result rows.
//
// Supported formats:
//   - CSV: comma-separated values with header row
//   - JSON: pretty-printed JSON array
//   - JSON Lines: one JSON object per line
//   - XLSX: spreadsheet workbook
//   - Table: aligned terminal table
//
// Example usage:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	formatter.SetColumns(ds.ColumnNames())
//	if err := formatter.Format(rows); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"
	"sort"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format writes rows in the formatter's specific format
	Format(rows []map[string]interface{}) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)

	// SetColumns fixes the column display order; without it, columns fall
	// back to the sorted union of all row keys
	SetColumns(columns []string)
}

// resultColumns returns the column order for tabular output: the preferred
// display order first, then any extra columns found in the rows, sorted.
// Rows may be heterogeneous (sparse projections, first-record-only schema),
// so the union is taken over every row.
func resultColumns(rows []map[string]interface{}, preferred []string) []string {
	seen := make(map[string]bool)
	columns := make([]string, 0, len(preferred))

	present := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			present[col] = true
		}
	}

	for _, col := range preferred {
		if present[col] && !seen[col] {
			seen[col] = true
			columns = append(columns, col)
		}
	}

	extra := make([]string, 0)
	for col := range present {
		if !seen[col] {
			extra = append(extra, col)
		}
	}
	sort.Strings(extra)

	return append(columns, extra...)
}
