package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidInput reports that a value handed to Flatten was not an object.
// This is a calling-contract violation, not a user-facing condition: records
// are only flattened after the payload passed the array-of-objects check.
var ErrInvalidInput = errors.New("input is not an object")

// Flatten converts one record into its flat form. Nested objects are inlined
// with underscore-joined key paths, arrays are serialized to a ", "-joined
// string, scalars and null pass through. Keys are visited in sorted order, so
// a path collision (a literal "a_b" next to a nested "a".."b") resolves the
// same way on every run: the lexically greater source key writes last and
// wins. The result never contains a nested object or array value.
func Flatten(v interface{}) (map[string]interface{}, error) {
	rec, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInput, v)
	}

	flat := make(map[string]interface{}, len(rec))
	flattenInto(flat, "", rec)
	return flat, nil
}

func flattenInto(dst map[string]interface{}, prefix string, rec map[string]interface{}) {
	keys := make([]string, 0, len(rec))
	for key := range rec {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := rec[key]
		name := key
		if prefix != "" {
			name = prefix + "_" + key
		}

		switch val := value.(type) {
		case map[string]interface{}:
			flattenInto(dst, name, val)
		case []interface{}:
			dst[name] = joinArray(val)
		default:
			dst[name] = value
		}
	}
}

// joinArray renders each element as text (objects as JSON) and joins the
// elements with ", ".
func joinArray(items []interface{}) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = elementText(item)
	}
	return strings.Join(parts, ", ")
}

func elementText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
