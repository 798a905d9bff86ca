package dateparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckConsistency(t *testing.T) {
	mk := func(y int, m time.Month, d int) *DateInformation {
		return &DateInformation{
			Date:              date(y, m, d),
			Format:            FormatYMDDash,
			Confidence:        1,
			ExtractedFromText: date(y, m, d).Format("2006-01-02"),
		}
	}

	tests := []struct {
		name string
		in   []*DateInformation
		want Consistency
	}{
		{"no values", nil, Unknown},
		{"single date", []*DateInformation{mk(2024, time.March, 14)}, Unknown},
		{"nils ignored", []*DateInformation{nil, mk(2024, time.March, 14), nil}, Unknown},
		{"zero date ignored", []*DateInformation{{}, mk(2024, time.March, 14)}, Unknown},
		{"two days apart", []*DateInformation{mk(2024, time.March, 14), mk(2024, time.March, 16)}, Consistent},
		{"five days apart", []*DateInformation{mk(2024, time.March, 14), mk(2024, time.March, 19)}, Consistent},
		{"exactly thirty days", []*DateInformation{mk(2024, time.March, 1), mk(2024, time.March, 31)}, Consistent},
		{"thirty one days", []*DateInformation{mk(2024, time.March, 1), mk(2024, time.April, 1)}, Inconsistent},
		{"ninety days apart", []*DateInformation{mk(2024, time.January, 1), mk(2024, time.March, 31)}, Inconsistent},
		{"century apart", []*DateInformation{mk(2024, time.March, 14), mk(1924, time.March, 16)}, Inconsistent},
		{"three dates within window", []*DateInformation{mk(2024, time.March, 1), mk(2024, time.March, 10), mk(2024, time.March, 28)}, Consistent},
		{"three dates outer pair wide", []*DateInformation{mk(2024, time.March, 10), mk(2024, time.March, 1), mk(2024, time.April, 15)}, Inconsistent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckConsistency(tt.in...))
		})
	}
}
