package dateparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceAdjustments(t *testing.T) {
	table := newTestTable() // clock pinned to 2025-06-01

	tests := []struct {
		name    string
		matched string
		year    int
		want    float64
	}{
		{"separator and full year", "22-03-2024", 2024, 1.0},
		{"month name and full year", "Mar 18, 2024", 2024, 1.0},
		{"separator only", "16/03/24", 2024, 0.9},
		{"no signals", "16 03 24", 2024, 0.8},
		{"fifty years back, no penalty", "16-03-1975", 1975, 1.0},
		{"over fifty years back", "16-03-1974", 1974, 0.7},
		{"exactly one hundred years back", "16-03-1925", 1925, 0.7},
		{"over one hundred years back", "16-03-1924", 1924, 0.3},
		{"far future", "16-03-2090", 2090, 0.7},
		{"ancient year, digit-run bonus only", "16 03 1824", 1824, 0.2},
		{"ancient year without signals", "16 03 24", 1824, 0.1},
		{"all bonuses clamp at one", "17-March-2024", 2024, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, table.confidence(tt.matched, tt.year), 1e-9)
		})
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.2))
	assert.Equal(t, 1.0, clamp01(1.1))
	assert.Equal(t, 0.5, clamp01(0.5))
}
