package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecallAtK(t *testing.T) {
	tests := []struct {
		name      string
		relevant  []int
		retrieved []int
		k         int
		want      float64
	}{
		{"all relevant retrieved", []int{3, 6, 1}, []int{3, 6, 1, 5, 4, 2}, 10, 1.0},
		{"half missing", []int{1, 2, 3, 4}, []int{1, 2, 5, 6}, 10, 0.5},
		{"empty results", []int{1, 2}, []int{}, 10, 0.0},
		// no relevant docs means recall is undefined; we return 0
		{"no relevant docs", []int{}, []int{1, 2, 3}, 10, 0.0},
		{"cut off at k", []int{1, 2, 3}, []int{1, 2, 7, 8, 3}, 3, 2.0 / 3.0},
		{"fewer results than k", []int{1, 2}, []int{1}, 10, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RecallAtK(tt.relevant, tt.retrieved, tt.k), 1e-9)
		})
	}
}

func TestMRRAtK(t *testing.T) {
	tests := []struct {
		name      string
		relevant  []int
		retrieved []int
		want      float64
	}{
		{"first result relevant", []int{1, 2}, []int{1, 9, 8}, 1.0},
		{"third result relevant", []int{1}, []int{9, 8, 1}, 1.0 / 3.0},
		{"beyond cutoff", []int{1}, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 1}, 0.0},
		{"empty relevant", []int{}, []int{1, 2}, 0.0},
		{"empty retrieved", []int{1}, []int{}, 0.0},
		{"first of several relevant", []int{1, 2, 3}, []int{9, 2, 1, 3}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MRRAtK(tt.relevant, tt.retrieved, 10), 1e-9)
		})
	}
}

func TestOrderMatches(t *testing.T) {
	assert.True(t, OrderMatches([]int{3, 6, 1}, []int{3, 6, 1}))
	assert.False(t, OrderMatches([]int{3, 6, 1}, []int{6, 3, 1}))
	assert.False(t, OrderMatches([]int{3, 6}, []int{3, 6, 1}))
	assert.True(t, OrderMatches([]int{}, []int{}))
}

func TestRecallAtK_WorksOnStrings(t *testing.T) {
	assert.InDelta(t, 1.0, RecallAtK([]string{"Pet Care Plus"}, []string{"Pet Care Plus"}, 10), 1e-9)
}
