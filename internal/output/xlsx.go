package output

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXFormatter outputs rows as a spreadsheet workbook with one sheet.
type XLSXFormatter struct {
	writer  io.Writer
	columns []string
}

// NewXLSXFormatter creates a new XLSX formatter.
func NewXLSXFormatter(w io.Writer) *XLSXFormatter {
	return &XLSXFormatter{writer: w}
}

// SetOutput sets the output writer.
func (x *XLSXFormatter) SetOutput(w io.Writer) {
	x.writer = w
}

// SetColumns fixes the column display order.
func (x *XLSXFormatter) SetColumns(columns []string) {
	x.columns = columns
}

// Format writes rows to a workbook. Numbers and booleans keep their native
// cell type; everything else is written as text.
func (x *XLSXFormatter) Format(rows []map[string]interface{}) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	columns := resultColumns(rows, x.columns)

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(columns))
		for j, col := range columns {
			values[j] = cellValue(row[col])
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(x.writer)
	return err
}

func cellValue(v interface{}) interface{} {
	switch v.(type) {
	case nil:
		return ""
	case float64, float32, int, int32, int64, bool, string:
		return v
	default:
		return formatValue(v)
	}
}
