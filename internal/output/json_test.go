package output

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestJSONFormatter(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "Chile"},
	}

	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)
	if err := f.Format(rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var got []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("round trip = %v, want %v", got, rows)
	}
	if !strings.Contains(buf.String(), "\n") {
		t.Error("expected indented output")
	}
}

func TestJSONFormatterNilRows(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)
	if err := f.Format(nil); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("nil rows should render as empty array, got %q", buf.String())
	}
}

func TestJSONLFormatter(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "Chile"},
		{"name": "Laos"},
	}

	var buf bytes.Buffer
	f := NewJSONLFormatter(&buf)
	if err := f.Format(rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	for i, line := range lines {
		var row map[string]interface{}
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}
