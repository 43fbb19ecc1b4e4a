package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Evaluator decides whether a flattened record matches one parsed predicate.
// LIKE patterns are compiled once per query, not once per row.
type Evaluator struct {
	pred Predicate
	re   *regexp.Regexp
}

// NewEvaluator creates an evaluator for the predicate.
func NewEvaluator(pred Predicate) (*Evaluator, error) {
	ev := &Evaluator{pred: pred}
	if pred.Op == OpLike {
		re, err := compileLikePattern(pred.Literal)
		if err != nil {
			return nil, fmt.Errorf("compile LIKE pattern %q: %w", pred.Literal, err)
		}
		ev.re = re
	}
	return ev, nil
}

// Match reports whether the record satisfies the predicate. The record
// value's runtime type decides the comparison: strings compare
// case-sensitively, numbers against the literal parsed as a float, booleans
// against the literal's "true"/"false" text. A missing or null column never
// matches, except that it still equals an empty equality literal.
func (e *Evaluator) Match(row map[string]interface{}) bool {
	v, exists := row[e.pred.Column]
	if !exists || v == nil {
		return e.pred.Op == OpEquals && e.pred.Literal == ""
	}

	switch e.pred.Op {
	case OpEquals:
		return equalsValue(v, e.pred.Literal)
	case OpLike:
		// LIKE only applies to string-valued columns.
		s, ok := v.(string)
		if !ok {
			return false
		}
		return e.re.MatchString(s)
	}
	return false
}

func equalsValue(v interface{}, literal string) bool {
	switch val := v.(type) {
	case string:
		return val == literal
	case bool:
		return strconv.FormatBool(val) == literal
	default:
		if num, ok := toFloat64(v); ok {
			want, err := strconv.ParseFloat(literal, 64)
			return err == nil && num == want
		}
		return false
	}
}

// compileLikePattern translates a SQL LIKE pattern into an anchored regular
// expression: each % becomes "any run of characters", everything else is
// matched literally. The match is a full-string test, so a pattern without
// leading/trailing % does not behave as substring containment.
func compileLikePattern(pattern string) (*regexp.Regexp, error) {
	segments := strings.Split(pattern, "%")
	for i, seg := range segments {
		segments[i] = regexp.QuoteMeta(seg)
	}
	return regexp.Compile("(?s)^" + strings.Join(segments, ".*") + "$")
}
