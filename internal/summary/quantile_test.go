package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuartiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sizes  []int64
		wantQ1 float64
		wantQ2 float64
		wantQ3 float64
	}{
		{"four_even_groups", []int64{10, 20, 30, 40}, 12.5, 25, 37.5},
		{"two_points_extrapolate", []int64{1, 2}, 0.75, 1.5, 2.25},
		{"three_points", []int64{1, 2, 3}, 1, 2, 3},
		{"unsorted_input", []int64{40, 10, 30, 20}, 12.5, 25, 37.5},
		{"repeated_values", []int64{5, 5, 5, 5}, 5, 5, 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q1, median, q3 := quartiles(tt.sizes)

			assert.InDelta(t, tt.wantQ1, q1, 1e-9)
			assert.InDelta(t, tt.wantQ2, median, 1e-9)
			assert.InDelta(t, tt.wantQ3, q3, 1e-9)
		})
	}
}

func TestQuartilesDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	sizes := []int64{40, 10, 30, 20}
	quartiles(sizes)

	assert.Equal(t, []int64{40, 10, 30, 20}, sizes)
}
