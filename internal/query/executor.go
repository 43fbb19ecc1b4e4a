package query

import (
	"sort"

	"github.com/apiscope/apiscope/internal/dataset"
)

// Execute runs a parsed query against the flattened dataset and returns the
// result rows (never nil on success). The pipeline order is fixed:
// filter → sort → limit → project. Limiting before sorting would return the
// wrong rows, and projecting before filtering could drop columns the
// predicate needs.
func Execute(rows []map[string]interface{}, q *ParsedQuery) ([]map[string]interface{}, error) {
	if len(rows) == 0 {
		return nil, dataset.ErrNoData
	}

	out := rows
	if q.Predicate != nil {
		ev, err := NewEvaluator(*q.Predicate)
		if err != nil {
			return nil, err
		}
		out = applyFilter(out, ev)
	}
	if q.OrderBy != nil {
		out = applyOrderBy(out, *q.OrderBy)
	}
	if q.Limit != nil {
		out = applyLimit(out, *q.Limit)
	}
	return applyProjection(out, q), nil
}

// applyFilter keeps the rows matching the predicate.
func applyFilter(rows []map[string]interface{}, ev *Evaluator) []map[string]interface{} {
	filtered := make([]map[string]interface{}, 0)
	for _, row := range rows {
		if ev.Match(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// applyOrderBy sorts a copy of the rows. The sort is stable, so rows with
// equal keys keep their original relative order. Nulls and missing columns
// sort last regardless of direction.
func applyOrderBy(rows []map[string]interface{}, spec OrderSpec) []map[string]interface{} {
	sorted := make([]map[string]interface{}, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		vi, okI := sorted[i][spec.Column]
		vj, okJ := sorted[j][spec.Column]
		nullI := !okI || vi == nil
		nullJ := !okJ || vj == nil

		if nullI || nullJ {
			// A null key is never "less": it sinks to the end either way.
			return !nullI && nullJ
		}

		cmp := compareValues(vi, vj)
		if spec.Desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted
}

// applyLimit truncates to at most n rows. LIMIT 0 yields an empty result.
func applyLimit(rows []map[string]interface{}, n int) []map[string]interface{} {
	if n >= len(rows) {
		return rows
	}
	return rows[:n]
}

// applyProjection shapes the result rows. A wildcard passes rows through in
// their full flattened shape; otherwise each result row carries only the
// requested keys that exist in the source row. Requested keys missing from a
// row are silently omitted, not set to null.
func applyProjection(rows []map[string]interface{}, q *ParsedQuery) []map[string]interface{} {
	if q.Star {
		return rows
	}

	projected := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		newRow := make(map[string]interface{}, len(q.Projection))
		for _, col := range q.Projection {
			if value, exists := row[col]; exists {
				newRow[col] = value
			}
		}
		projected = append(projected, newRow)
	}
	return projected
}
