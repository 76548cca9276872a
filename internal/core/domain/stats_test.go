package domain

import (
	"math"
	"testing"
)

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{"no tasks scheduled counts as done", 0, 0, 100},
		{"nothing completed", 0, 4, 0},
		{"half completed", 2, 4, 50},
		{"thirds are not rounded", 1, 3, 100.0 / 3},
		{"all completed", 5, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressPercentage(tt.completed, tt.total)
			if math.IsNaN(got) {
				t.Fatal("Percentage must never be NaN")
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
