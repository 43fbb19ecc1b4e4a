package query

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ParsedQuery
	}{
		{
			name: "star query",
			in:   "SELECT * FROM data",
			want: ParsedQuery{Star: true, Table: "data"},
		},
		{
			name: "projection list",
			in:   "SELECT name, population FROM data",
			want: ParsedQuery{Projection: []string{"name", "population"}, Table: "data"},
		},
		{
			name: "equality predicate on string",
			in:   "SELECT * FROM data WHERE region = 'Europe'",
			want: ParsedQuery{
				Star:      true,
				Table:     "data",
				Predicate: &Predicate{Column: "region", Op: OpEquals, Literal: "Europe"},
			},
		},
		{
			name: "equality predicate on number",
			in:   "SELECT * FROM data WHERE population = 19",
			want: ParsedQuery{
				Star:      true,
				Table:     "data",
				Predicate: &Predicate{Column: "population", Op: OpEquals, Literal: "19"},
			},
		},
		{
			name: "equality predicate on boolean normalizes case",
			in:   "SELECT * FROM data WHERE landlocked = TRUE",
			want: ParsedQuery{
				Star:      true,
				Table:     "data",
				Predicate: &Predicate{Column: "landlocked", Op: OpEquals, Literal: "true"},
			},
		},
		{
			name: "like predicate",
			in:   "SELECT * FROM data WHERE region LIKE '%Europe%'",
			want: ParsedQuery{
				Star:      true,
				Table:     "data",
				Predicate: &Predicate{Column: "region", Op: OpLike, Literal: "%Europe%"},
			},
		},
		{
			name: "order by defaults ascending",
			in:   "SELECT * FROM data ORDER BY name",
			want: ParsedQuery{Star: true, Table: "data", OrderBy: &OrderSpec{Column: "name"}},
		},
		{
			name: "order by descending",
			in:   "SELECT * FROM data ORDER BY population DESC",
			want: ParsedQuery{Star: true, Table: "data", OrderBy: &OrderSpec{Column: "population", Desc: true}},
		},
		{
			name: "limit",
			in:   "SELECT * FROM data LIMIT 5",
			want: ParsedQuery{Star: true, Table: "data", Limit: intPtr(5)},
		},
		{
			name: "limit zero is preserved",
			in:   "SELECT * FROM data LIMIT 0",
			want: ParsedQuery{Star: true, Table: "data", Limit: intPtr(0)},
		},
		{
			name: "all clauses together",
			in:   "SELECT name FROM data WHERE region = 'Asia' ORDER BY name ASC LIMIT 3",
			want: ParsedQuery{
				Projection: []string{"name"},
				Table:      "data",
				Predicate:  &Predicate{Column: "region", Op: OpEquals, Literal: "Asia"},
				OrderBy:    &OrderSpec{Column: "name"},
				Limit:      intPtr(3),
			},
		},
		{
			name: "table name is not validated",
			in:   "SELECT * FROM anything_goes",
			want: ParsedQuery{Star: true, Table: "anything_goes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if len(got.Warnings) != 0 {
				t.Errorf("unexpected warnings: %v", got.Warnings)
			}
			got.Warnings = nil
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, *got, tt.want)
			}
		})
	}
}

func TestParseNonSelect(t *testing.T) {
	for _, in := range []string{
		"DROP TABLE data",
		"DELETE FROM data",
		"UPDATE data SET x = 1",
		"",
		"   ",
	} {
		if _, err := Parse(in); !errors.Is(err, ErrUnsupportedQuery) {
			t.Errorf("Parse(%q) error = %v, want ErrUnsupportedQuery", in, err)
		}
	}
}

func TestParsePermissiveDegradation(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		check    func(t *testing.T, q *ParsedQuery)
		wantWarn string
	}{
		{
			name: "unrecognized WHERE drops the filter",
			in:   "SELECT * FROM data WHERE population > 10",
			check: func(t *testing.T, q *ParsedQuery) {
				if q.Predicate != nil {
					t.Errorf("expected no predicate, got %+v", q.Predicate)
				}
			},
			wantWarn: "unrecognized WHERE clause",
		},
		{
			name: "malformed ORDER BY drops the sort",
			in:   "SELECT * FROM data ORDER name",
			check: func(t *testing.T, q *ParsedQuery) {
				if q.OrderBy != nil {
					t.Errorf("expected no order spec, got %+v", q.OrderBy)
				}
			},
			wantWarn: "malformed ORDER BY",
		},
		{
			name: "malformed LIMIT drops the limit",
			in:   "SELECT * FROM data LIMIT many",
			check: func(t *testing.T, q *ParsedQuery) {
				if q.Limit != nil {
					t.Errorf("expected no limit, got %d", *q.Limit)
				}
			},
			wantWarn: "malformed LIMIT",
		},
		{
			name: "negative LIMIT drops the limit",
			in:   "SELECT * FROM data LIMIT -1",
			check: func(t *testing.T, q *ParsedQuery) {
				if q.Limit != nil {
					t.Errorf("expected no limit, got %d", *q.Limit)
				}
			},
			wantWarn: "malformed LIMIT",
		},
		{
			name: "missing FROM still parses",
			in:   "SELECT *",
			check: func(t *testing.T, q *ParsedQuery) {
				if !q.Star {
					t.Error("expected star projection")
				}
			},
			wantWarn: "missing FROM clause",
		},
		{
			name: "aggregate is parsed but flagged",
			in:   "SELECT COUNT(*) FROM data",
			check: func(t *testing.T, q *ParsedQuery) {
				if !reflect.DeepEqual(q.Projection, []string{"COUNT(*)"}) {
					t.Errorf("Projection = %v, want [COUNT(*)]", q.Projection)
				}
			},
			wantWarn: "parsed but not executed",
		},
		{
			name: "GROUP BY is recorded but inert",
			in:   "SELECT * FROM data GROUP BY region",
			check: func(t *testing.T, q *ParsedQuery) {
				if !reflect.DeepEqual(q.GroupBy, []string{"region"}) {
					t.Errorf("GroupBy = %v, want [region]", q.GroupBy)
				}
			},
			wantWarn: "rows are returned ungrouped",
		},
		{
			name: "broken WHERE does not swallow a later clause",
			in:   "SELECT * FROM data WHERE ??? ORDER BY name",
			check: func(t *testing.T, q *ParsedQuery) {
				if q.Predicate != nil {
					t.Errorf("expected no predicate, got %+v", q.Predicate)
				}
				if q.OrderBy == nil || q.OrderBy.Column != "name" {
					t.Errorf("expected ORDER BY name to survive, got %+v", q.OrderBy)
				}
			},
			wantWarn: "unrecognized WHERE clause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			tt.check(t, q)

			found := false
			for _, w := range q.Warnings {
				if strings.Contains(w, tt.wantWarn) {
					found = true
				}
			}
			if !found {
				t.Errorf("warnings %v do not mention %q", q.Warnings, tt.wantWarn)
			}
		})
	}
}
