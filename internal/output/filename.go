package output

import (
	"fmt"
	"io"
	"time"
)

// File extensions per export format.
var formatExtensions = map[string]string{
	"csv":   "csv",
	"json":  "json",
	"jsonl": "jsonl",
	"xlsx":  "xlsx",
}

// ExportFilename builds a download filename with today's date embedded,
// e.g. "apiscope_export_2026-08-29.csv". Unknown formats keep their name as
// the extension.
func ExportFilename(base, format string) string {
	ext, ok := formatExtensions[format]
	if !ok {
		ext = format
	}
	return fmt.Sprintf("%s_%s.%s", base, time.Now().Format("2006-01-02"), ext)
}

// NewFormatter returns the formatter for a format name, or false when the
// format is unknown.
func NewFormatter(format string, w io.Writer) (Formatter, bool) {
	switch format {
	case "csv":
		return NewCSVFormatter(w), true
	case "json":
		return NewJSONFormatter(w), true
	case "jsonl":
		return NewJSONLFormatter(w), true
	case "xlsx":
		return NewXLSXFormatter(w), true
	case "table":
		return NewTableFormatter(w), true
	default:
		return nil, false
	}
}
