package dataset

import (
	"errors"
	"sort"
)

// Column types reported by InferSchema.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// ErrNoData reports that a dataset is empty or not an array of records.
// Query mode is unavailable until a queryable dataset is loaded.
var ErrNoData = errors.New("no data available")

// ColumnInfo describes one column of the flattened dataset.
type ColumnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// InferSchema derives column metadata by sampling the first flattened record
// only. The snapshot deliberately ignores later records: in heterogeneous
// datasets only the first record's keys become visible columns. order fixes
// the display order; keys it does not cover are appended sorted.
func InferSchema(flat []map[string]interface{}, order []string) ([]ColumnInfo, error) {
	if len(flat) == 0 {
		return nil, ErrNoData
	}
	first := flat[0]

	names := make([]string, 0, len(first))
	seen := make(map[string]bool, len(first))
	for _, name := range order {
		if _, ok := first[name]; ok && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	rest := make([]string, 0, len(first))
	for name := range first {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	columns := make([]ColumnInfo, 0, len(names))
	for _, name := range names {
		columns = append(columns, ColumnInfo{
			Name:     name,
			Type:     inferType(first[name]),
			Nullable: first[name] == nil,
		})
	}
	return columns, nil
}

// inferType maps a flattened value to a column type. Arrays were already
// serialized to text by Flatten, so they surface as strings here; the object
// fallback should not occur after flattening but is kept as a safety net.
func inferType(v interface{}) string {
	switch v.(type) {
	case nil:
		return TypeString
	case string:
		return TypeString
	case float64, float32, int, int32, int64:
		return TypeNumber
	case bool:
		return TypeBoolean
	default:
		return TypeObject
	}
}
