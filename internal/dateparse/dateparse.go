// Package dateparse locates calendar dates in free-form text, normalizes
// them to midnight UTC, and scores how reliable each extraction is.
//
// Extraction is a pure function of (text, Table). A Table holds the ordered
// pattern list and the clock used by the age penalty; once constructed it is
// immutable and safe for concurrent use.
package dateparse

import (
	"time"
)

// DateInformation is the result of a successful extraction. All fields are
// populated together; an absent result is a nil *DateInformation.
type DateInformation struct {
	Date              time.Time `json:"date"`
	Format            string    `json:"format"`
	Confidence        float64   `json:"confidence"`
	ExtractedFromText string    `json:"extracted_from_text"`
}

// Table is the extraction configuration: loose scan patterns in priority
// order, their strict per-format parsers, and the clock for scoring.
type Table struct {
	patterns []patternEntry
	now      func() time.Time
}

// Option configures a Table.
type Option func(*Table)

// WithNow overrides the clock used by the age penalty.
func WithNow(now func() time.Time) Option {
	return func(t *Table) { t.now = now }
}

// New builds a Table over the default pattern set.
func New(opts ...Option) *Table {
	t := &Table{
		patterns: defaultPatterns,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Extract scans text for date-shaped substrings, parses each candidate, and
// returns the highest-confidence one, or nil when nothing parses. Ties keep
// the first candidate found, in pattern priority order then leftmost.
// ExtractedFromText is always an exact contiguous slice of the input.
func (t *Table) Extract(text string) *DateInformation {
	if text == "" {
		return nil
	}

	var best *DateInformation
	for _, c := range t.collect(text) {
		parsed, format, ok := parseCandidate(c)
		if !ok {
			continue
		}
		conf := t.confidence(c.text, parsed.Year())
		if best == nil || conf > best.Confidence {
			best = &DateInformation{
				Date:              parsed,
				Format:            format,
				Confidence:        conf,
				ExtractedFromText: c.text,
			}
		}
	}
	return best
}

// candidate is a loose-pattern match pending strict validation.
type candidate struct {
	text  string
	entry *patternEntry
}

// collect gathers every non-overlapping loose match. Patterns run in
// priority order, so a span claimed by an earlier pattern suppresses any
// overlapping match from a later one, even if the claimed candidate later
// fails to parse.
func (t *Table) collect(text string) []candidate {
	var (
		out     []candidate
		claimed [][2]int
	)
	for i := range t.patterns {
		p := &t.patterns[i]
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			if overlapsAny(claimed, loc[0], loc[1]) {
				continue
			}
			claimed = append(claimed, [2]int{loc[0], loc[1]})
			out = append(out, candidate{text: text[loc[0]:loc[1]], entry: p})
		}
	}
	return out
}

func overlapsAny(claimed [][2]int, start, end int) bool {
	for _, span := range claimed {
		if start < span[1] && span[0] < end {
			return true
		}
	}
	return false
}

// parseCandidate tries the candidate's strict per-format parser, then the
// generic layout list. Both failing rejects the candidate without error.
func parseCandidate(c candidate) (time.Time, string, bool) {
	if d, ok := c.entry.parse(c.text); ok {
		return d, c.entry.format, true
	}
	if d, ok := parseGeneric(c.text); ok {
		return d, FormatAutoDetected, true
	}
	return time.Time{}, "", false
}
