package query

import (
	"testing"
)

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name string
		a, b interface{}
		want int
	}{
		{"numbers", float64(1), float64(2), -1},
		{"equal numbers", float64(3), float64(3), 0},
		{"int and float mix numerically", 5, float64(2.5), 1},
		{"strings", "apple", "banana", -1},
		{"equal strings", "x", "x", 0},
		{"booleans false first", false, true, -1},
		{"equal booleans", true, true, 0},
		{"mixed types compare textually", float64(10), "2", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareValues(tt.a, tt.b); got != tt.want {
				t.Errorf("compareValues(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
