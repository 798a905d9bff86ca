package inference

import (
	"regexp"
)

var (
	reDateish   = regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}[./-]\d{2,4}\b|\b(19|20)\d{2}\b`)
	reMonthWord = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b`)
	reWordRun   = regexp.MustCompile(`[A-Za-z]{3,}`)
)

func hasDatePattern(s string) bool   { return reDateish.MatchString(s) }
func hasMonthWord(s string) bool     { return reMonthWord.MatchString(s) }
func hasReadableWords(s string) bool { return reWordRun.MatchString(s) }

// HeuristicConfidence estimates read quality from decoded text
// characteristics. Used when the endpoint omits its own confidence.
func HeuristicConfidence(txt string) float32 {
	// very simple: boost if we see common document artifacts
	// (date-ish, month words, readable words). Each adds ~0.15.
	score := float32(0.2) // base
	if hasDatePattern(txt) {
		score += 0.2
	}
	if hasMonthWord(txt) {
		score += 0.15
	}
	if hasReadableWords(txt) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
