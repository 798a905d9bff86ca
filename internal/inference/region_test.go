package inference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceRegionBands(t *testing.T) {
	// 8 lines: band = 2, so header = lines 1-2, footer = lines 7-8.
	text := strings.Join([]string{
		"ACME CORP", "Invoice 2024-001",
		"Item A", "Item B", "Item C", "Item D",
		"Signed by J. Doe", "Date: 15/03/2024",
	}, "\n")

	assert.Equal(t, "ACME CORP\nInvoice 2024-001", SliceRegion(text, "Header"))
	assert.Equal(t, "Signed by J. Doe\nDate: 15/03/2024", SliceRegion(text, "Footer"))
	assert.Equal(t, "Item A\nItem B\nItem C\nItem D", SliceRegion(text, "Body"))
}

func TestSliceRegionSynonyms(t *testing.T) {
	text := "first\nsecond\nthird\nfourth"
	assert.Equal(t, SliceRegion(text, "Header"), SliceRegion(text, "top"))
	assert.Equal(t, SliceRegion(text, "Footer"), SliceRegion(text, "bottom"))
}

func TestSliceRegionShortText(t *testing.T) {
	// Too short to split meaningfully: every region sees the whole text.
	text := "only line"
	assert.Equal(t, text, SliceRegion(text, "Header"))
	assert.Equal(t, text, SliceRegion(text, "Footer"))
	assert.Equal(t, text, SliceRegion(text, "Body"))

	two := "one\ntwo"
	assert.Equal(t, two, SliceRegion(two, "Body"))
}

func TestSliceRegionBandCap(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "line"
	}
	got := SliceRegion(strings.Join(lines, "\n"), "Header")
	assert.Len(t, strings.Split(got, "\n"), maxBandLines)
}

func TestSliceRegionUnknownRegion(t *testing.T) {
	text := "a\nb\nc\nd"
	assert.Equal(t, text, SliceRegion(text, "margin"))
	assert.Equal(t, text, SliceRegion(text, ""))
}

func TestSliceRegionEmptyText(t *testing.T) {
	assert.Equal(t, "", SliceRegion("", "Header"))
}
