package dateparse

import (
	"regexp"
	"strings"
)

const (
	baseConfidence = 0.8

	separatorBonus = 0.1
	fullYearBonus  = 0.1
	monthNameBonus = 0.1

	agePenaltyFar     = 0.3 // |currentYear - year| > 50
	agePenaltyExtreme = 0.4 // |currentYear - year| > 100, stacks with agePenaltyFar
)

var (
	fourDigitRun = regexp.MustCompile(`\d{4}`)
	monthNameRe  = regexp.MustCompile(`(?i)\b(?:` + monthToken + `)\b`)
)

// confidence scores a parsed candidate: a base score, bonuses for slash or
// dash separators, an explicit four-digit year, and a recognized month name,
// and stacking penalties for years far from the current year. The result is
// clamped to [0, 1].
func (t *Table) confidence(matched string, year int) float64 {
	score := baseConfidence

	if strings.ContainsAny(matched, "/-") {
		score += separatorBonus
	}
	if fourDigitRun.MatchString(matched) {
		score += fullYearBonus
	}
	if monthNameRe.MatchString(matched) {
		score += monthNameBonus
	}

	diff := t.now().Year() - year
	if diff < 0 {
		diff = -diff
	}
	if diff > 50 {
		score -= agePenaltyFar
	}
	if diff > 100 {
		score -= agePenaltyExtreme
	}

	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
