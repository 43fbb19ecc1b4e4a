package query

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator provides locale-aware ordering for string comparisons in ORDER BY.
var collator = collate.New(language.Und)

// toFloat64 converts a value to float64 if possible.
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

// compareValues orders two non-null values for sorting: numbers numerically,
// strings with locale-aware collation, booleans false before true. Mixed or
// unknown types fall back to collated comparison of their textual form.
// Returns -1, 0 or +1.
func compareValues(a, b interface{}) int {
	aNum, aIsNum := toFloat64(a)
	bNum, bIsNum := toFloat64(b)
	if aIsNum && bIsNum {
		if aNum < bNum {
			return -1
		}
		if aNum > bNum {
			return 1
		}
		return 0
	}

	aStr, aIsStr := a.(string)
	bStr, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return collator.CompareString(aStr, bStr)
	}

	aBool, aIsBool := a.(bool)
	bBool, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		if !aBool && bBool {
			return -1
		}
		if aBool && !bBool {
			return 1
		}
		return 0
	}

	return collator.CompareString(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}
