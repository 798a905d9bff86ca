package inference

import (
	"strings"

	"github.com/inkspect/docverify/constants"
)

// maxBandLines caps how many lines the header/footer bands may claim,
// so a long page doesn't fold half its body into the header.
const maxBandLines = 10

// SliceRegion cuts one region's band out of full-page text. The first
// quarter of lines (capped) is the header, the last quarter the footer,
// and everything between is the body. Unknown regions and empty text
// return the input unchanged.
func SliceRegion(text, region string) string {
	canonical, ok := constants.CanonicalizeRegion(region)
	if !ok || text == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	n := len(lines)
	band := n / 4
	if band < 1 {
		band = 1
	}
	if band > maxBandLines {
		band = maxBandLines
	}

	switch canonical {
	case constants.RegionHeader:
		if band >= n {
			return text
		}
		return strings.TrimSpace(strings.Join(lines[:band], "\n"))
	case constants.RegionFooter:
		if band >= n {
			return text
		}
		return strings.TrimSpace(strings.Join(lines[n-band:], "\n"))
	case constants.RegionBody:
		if n <= 2*band {
			return text
		}
		return strings.TrimSpace(strings.Join(lines[band:n-band], "\n"))
	default:
		return text
	}
}
