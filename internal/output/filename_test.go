package output

import (
	"bytes"
	"fmt"
	"testing"
	"time"
)

func TestExportFilename(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	tests := []struct {
		format string
		want   string
	}{
		{"csv", fmt.Sprintf("export_%s.csv", today)},
		{"json", fmt.Sprintf("export_%s.json", today)},
		{"jsonl", fmt.Sprintf("export_%s.jsonl", today)},
		{"xlsx", fmt.Sprintf("export_%s.xlsx", today)},
		{"weird", fmt.Sprintf("export_%s.weird", today)},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := ExportFilename("export", tt.format); got != tt.want {
				t.Errorf("ExportFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewFormatter(t *testing.T) {
	var buf bytes.Buffer

	for _, format := range []string{"csv", "json", "jsonl", "xlsx", "table"} {
		f, ok := NewFormatter(format, &buf)
		if !ok || f == nil {
			t.Errorf("NewFormatter(%q) should return a formatter", format)
		}
	}

	if _, ok := NewFormatter("parquet", &buf); ok {
		t.Error("NewFormatter should reject unknown formats")
	}
}
