package dateparse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func newTestTable() *Table {
	return New(WithNow(fixedNow))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtractFormats(t *testing.T) {
	table := newTestTable()

	tests := []struct {
		name   string
		text   string
		want   time.Time
		format string
	}{
		{"dmy slash", "16/03/2024", date(2024, time.March, 16), FormatDMYSlash},
		{"dmy dash", "22-03-2024", date(2024, time.March, 22), FormatDMYDash},
		{"dmy dot", "16.03.2024", date(2024, time.March, 16), FormatDMYDot},
		{"ymd dash", "2024-03-16", date(2024, time.March, 16), FormatYMDDash},
		{"ymd slash", "2024/03/16", date(2024, time.March, 16), FormatYMDSlash},
		{"single digit fields", "1/2/2024", date(2024, time.February, 1), FormatDMYSlash},
		{"day month name", "18 March 2024", date(2024, time.March, 18), FormatDayMonth},
		{"ordinal day", "22nd March 2024", date(2024, time.March, 22), FormatDayMonth},
		{"month name first", "Mar 18, 2024", date(2024, time.March, 18), FormatMonthDay},
		{"full month name first", "March 18th, 2024", date(2024, time.March, 18), FormatMonthDay},
		{"abbreviated month with dot", "Sept. 9, 2024", date(2024, time.September, 9), FormatMonthDay},
		{"two digit year slash", "16/03/24", date(2024, time.March, 16), FormatDMYSlash2},
		{"two digit year dash", "16-03-99", date(1999, time.March, 16), FormatDMYDash2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Extract(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Date)
			assert.Equal(t, tt.format, got.Format)
			assert.Equal(t, tt.text, got.ExtractedFromText)
		})
	}
}

func TestExtractFromSurroundingText(t *testing.T) {
	table := newTestTable()

	t.Run("dash date in letterhead", func(t *testing.T) {
		got := table.Extract("Inspector General of Police APSP Bns, Amaravathi 22-03-2024")
		require.NotNil(t, got)
		assert.Equal(t, date(2024, time.March, 22), got.Date)
		assert.Equal(t, FormatDMYDash, got.Format)
		assert.Equal(t, "22-03-2024", got.ExtractedFromText)
		assert.GreaterOrEqual(t, got.Confidence, 0.9)
	})

	t.Run("month name date in signature block", func(t *testing.T) {
		got := table.Extract("Dy. Inspector General of Police, Kurnool Range, Kurnool Mar 18, 2024")
		require.NotNil(t, got)
		assert.Equal(t, date(2024, time.March, 18), got.Date)
		assert.Equal(t, FormatMonthDay, got.Format)
		assert.Equal(t, "Mar 18, 2024", got.ExtractedFromText)
	})

	t.Run("two digit year after label", func(t *testing.T) {
		got := table.Extract("Document Date: 16/03/24")
		require.NotNil(t, got)
		assert.Equal(t, date(2024, time.March, 16), got.Date)
		assert.Equal(t, FormatDMYSlash2, got.Format)
	})
}

func TestExtractAbsent(t *testing.T) {
	table := newTestTable()

	for _, text := range []string{
		"",
		"no dates here",
		"totals 123 and 456789",
		"version 1.2.3 build 77",
		"31-04-2024",
		"13.13.2024",
		"00-00-0000",
	} {
		assert.Nilf(t, table.Extract(text), "input %q", text)
	}
}

func TestExtractPrefersHighestConfidence(t *testing.T) {
	table := newTestTable()

	got := table.Extract("issued 16-03-1924, countersigned Mar 18, 2024")
	require.NotNil(t, got)
	assert.Equal(t, date(2024, time.March, 18), got.Date)
	assert.Equal(t, FormatMonthDay, got.Format)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
}

func TestExtractTieBreak(t *testing.T) {
	table := newTestTable()

	t.Run("pattern priority beats position", func(t *testing.T) {
		// Both candidates score the same; the slash pattern ranks above
		// the dash pattern, so the later slash date wins.
		got := table.Extract("17-03-2024 then 16/03/2024")
		require.NotNil(t, got)
		assert.Equal(t, date(2024, time.March, 16), got.Date)
		assert.Equal(t, FormatDMYSlash, got.Format)
	})

	t.Run("leftmost wins within a pattern", func(t *testing.T) {
		got := table.Extract("16/03/2024 then 17/03/2024")
		require.NotNil(t, got)
		assert.Equal(t, date(2024, time.March, 16), got.Date)
	})
}

func TestExtractTwoDigitYearPivot(t *testing.T) {
	table := newTestTable()

	got := table.Extract("01/01/49")
	require.NotNil(t, got)
	assert.Equal(t, 2049, got.Date.Year())

	got = table.Extract("01/01/50")
	require.NotNil(t, got)
	assert.Equal(t, 1950, got.Date.Year())
}

func TestExtractConfidenceBounds(t *testing.T) {
	table := newTestTable()

	inputs := []string{
		"1111-11-11",
		"9999/99/9999",
		"9/9/99 9-9-99 9.9.9999",
		"----////....",
		strings.Repeat("12-12-12 ", 40),
	}
	for _, text := range inputs {
		if got := table.Extract(text); got != nil {
			assert.GreaterOrEqualf(t, got.Confidence, 0.0, "input %q", text)
			assert.LessOrEqualf(t, got.Confidence, 1.0, "input %q", text)
		}
	}
}

func TestExtractRoundTrip(t *testing.T) {
	table := newTestTable()

	renders := []struct {
		name   string
		layout string
	}{
		{"dmy slash", "02/01/2006"},
		{"dmy dash", "02-01-2006"},
		{"dmy dot", "02.01.2006"},
		{"ymd dash", "2006-01-02"},
		{"ymd slash", "2006/01/02"},
		{"day month name", "2 January 2006"},
		{"month name day", "Jan 2, 2006"},
	}
	dates := []time.Time{
		date(2024, time.March, 16),
		date(1999, time.December, 31),
		date(2030, time.January, 2),
	}

	for _, r := range renders {
		t.Run(r.name, func(t *testing.T) {
			for _, want := range dates {
				got := table.Extract(want.Format(r.layout))
				require.NotNilf(t, got, "rendered %q", want.Format(r.layout))
				assert.Equal(t, want, got.Date)
			}
		})
	}
}
