package constants

import (
	"strings"
)

// Region names a zone of a document page that is read and analyzed
// independently. Cross-region agreement is what the consistency check
// ultimately reports on.
type Region string

const (
	RegionHeader Region = "Header"
	RegionBody   Region = "Body"
	RegionFooter Region = "Footer"
)

var allRegions = []Region{
	RegionHeader,
	RegionBody,
	RegionFooter,
}

func AsStringSlice() []string {
	result := make([]string, len(allRegions))
	for i, r := range allRegions {
		result[i] = string(r)
	}
	return result
}

func CanonicalizeRegion(input string) (Region, bool) {
	if input == "" {
		return RegionBody, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Region{
		"top":        RegionHeader,
		"letterhead": RegionHeader,
		"title":      RegionHeader,
		"middle":     RegionBody,
		"main":       RegionBody,
		"content":    RegionBody,
		"bottom":     RegionFooter,
		"signature":  RegionFooter,
		"stamp":      RegionFooter,
	}

	if r, ok := synonyms[normalized]; ok {
		return r, true
	}

	// check if it matches any region string
	for _, r := range allRegions {
		if normalized == strings.ToLower(string(r)) {
			return r, true
		}
	}

	return RegionBody, false
}
