package output

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONFormatter outputs rows as a pretty-printed JSON array.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new pretty-printed JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// SetColumns is a no-op: JSON object keys carry their own names.
func (j *JSONFormatter) SetColumns(columns []string) {}

// Format writes rows as an indented JSON array.
func (j *JSONFormatter) Format(rows []map[string]interface{}) error {
	if rows == nil {
		rows = []map[string]interface{}{}
	}
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	if _, err := j.writer.Write(b); err != nil {
		return err
	}
	_, err = j.writer.Write([]byte("\n"))
	return err
}

// JSONLFormatter outputs rows as JSON Lines (one JSON object per line).
type JSONLFormatter struct {
	writer io.Writer
}

// NewJSONLFormatter creates a new JSON Lines formatter.
func NewJSONLFormatter(w io.Writer) *JSONLFormatter {
	return &JSONLFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONLFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// SetColumns is a no-op: JSON object keys carry their own names.
func (j *JSONLFormatter) SetColumns(columns []string) {}

// Format writes rows as JSON Lines.
func (j *JSONLFormatter) Format(rows []map[string]interface{}) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range rows {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
