package dataset

import (
	"errors"
	"reflect"
	"testing"
)

func TestInferSchema(t *testing.T) {
	flat := []map[string]interface{}{
		{"name": "Chile", "population": float64(19), "landlocked": false, "note": nil},
		{"name": "Laos", "extra": "ignored"},
	}

	got, err := InferSchema(flat, []string{"name", "population", "landlocked", "note"})
	if err != nil {
		t.Fatalf("InferSchema() error = %v", err)
	}
	want := []ColumnInfo{
		{Name: "name", Type: TypeString},
		{Name: "population", Type: TypeNumber},
		{Name: "landlocked", Type: TypeBoolean},
		{Name: "note", Type: TypeString, Nullable: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InferSchema() = %v, want %v", got, want)
	}
}

func TestInferSchemaFirstRecordOnly(t *testing.T) {
	flat := []map[string]interface{}{
		{"a": "x"},
		{"a": "y", "b": "only in later records"},
	}
	got, err := InferSchema(flat, nil)
	if err != nil {
		t.Fatalf("InferSchema() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "a" {
		t.Errorf("expected only first-record columns, got %v", got)
	}
}

func TestInferSchemaOrderFallback(t *testing.T) {
	flat := []map[string]interface{}{
		{"zulu": float64(1), "alpha": "x", "mike": true},
	}

	// Partial order: covered keys lead, the rest follow sorted.
	got, err := InferSchema(flat, []string{"mike", "missing"})
	if err != nil {
		t.Fatalf("InferSchema() error = %v", err)
	}
	names := make([]string, len(got))
	for i, col := range got {
		names[i] = col.Name
	}
	want := []string{"mike", "alpha", "zulu"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("column order = %v, want %v", names, want)
	}
}

func TestInferSchemaEmpty(t *testing.T) {
	if _, err := InferSchema(nil, nil); !errors.Is(err, ErrNoData) {
		t.Errorf("InferSchema(nil) error = %v, want ErrNoData", err)
	}
}
