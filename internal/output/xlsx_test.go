package output

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestXLSXFormatter(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "Chile", "population": float64(19)},
	}

	var buf bytes.Buffer
	f := NewXLSXFormatter(&buf)
	f.SetColumns([]string{"name", "population"})

	if err := f.Format(rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer wb.Close()

	tests := []struct {
		cell string
		want string
	}{
		{"A1", "name"},
		{"B1", "population"},
		{"A2", "Chile"},
		{"B2", "19"},
	}
	for _, tt := range tests {
		got, err := wb.GetCellValue("Sheet1", tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("cell %s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}
