package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Operators accepted by ApplyColumnFilter.
const (
	FilterEquals    = "eq"
	FilterNotEquals = "neq"
	FilterContains  = "contains"
	FilterGreater   = "gt"
	FilterLess      = "lt"
)

// ApplyColumnFilter filters flattened rows on a single column. This is the
// lightweight filtering path next to the query language: values are compared
// through their textual or numeric form, and rows missing the column simply
// do not match (no error).
func ApplyColumnFilter(rows []map[string]interface{}, column, op, value string) ([]map[string]interface{}, error) {
	matched := make([]map[string]interface{}, 0)
	for _, row := range rows {
		ok, err := matchColumn(row, column, op, value)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

func matchColumn(row map[string]interface{}, column, op, value string) (bool, error) {
	v, exists := row[column]
	if !exists || v == nil {
		return false, nil
	}

	switch op {
	case FilterEquals:
		return ValueText(v) == value, nil
	case FilterNotEquals:
		return ValueText(v) != value, nil
	case FilterContains:
		return strings.Contains(ValueText(v), value), nil
	case FilterGreater, FilterLess:
		num, isNum := toNumber(v)
		want, err := strconv.ParseFloat(value, 64)
		if !isNum || err != nil {
			// Non-numeric columns compare lexicographically.
			if op == FilterGreater {
				return ValueText(v) > value, nil
			}
			return ValueText(v) < value, nil
		}
		if op == FilterGreater {
			return num > want, nil
		}
		return num < want, nil
	default:
		return false, fmt.Errorf("unknown filter operator %q", op)
	}
}

// ValueText renders a flattened value as comparable display text.
func ValueText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func toNumber(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}
