package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Format tags reported in DateInformation.Format. A tag names the pattern
// that matched, not the exact width of its fields.
const (
	FormatDMYSlash     = "DD/MM/YYYY"
	FormatDMYDash      = "DD-MM-YYYY"
	FormatDMYDot       = "DD.MM.YYYY"
	FormatYMDDash      = "YYYY-MM-DD"
	FormatYMDSlash     = "YYYY/MM/DD"
	FormatDayMonth     = "DD Month YYYY"
	FormatMonthDay     = "MMM DD, YYYY"
	FormatDMYSlash2    = "DD/MM/YY"
	FormatDMYDash2     = "DD-MM-YY"
	FormatAutoDetected = "Auto-detected"
)

// monthToken matches abbreviated and full English month names.
const monthToken = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

func monthByName(name string) (time.Month, bool) {
	m, ok := months[strings.ToLower(name)]
	return m, ok
}

type patternEntry struct {
	re     *regexp.Regexp
	format string
	parse  func(s string) (time.Time, bool)
}

// defaultPatterns is the loose scan set, highest priority first. Numeric
// day-first forms outrank year-first forms, month-name forms follow, and
// two-digit-year forms come last so a four-digit match always claims its
// span before a two-digit prefix can.
var defaultPatterns = []patternEntry{
	{re: regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`), format: FormatDMYSlash, parse: parseDayFirst},
	{re: regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`), format: FormatDMYDash, parse: parseDayFirst},
	{re: regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.\d{4}\b`), format: FormatDMYDot, parse: parseDayFirst},
	{re: regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`), format: FormatYMDDash, parse: parseYearFirst},
	{re: regexp.MustCompile(`\b\d{4}/\d{1,2}/\d{1,2}\b`), format: FormatYMDSlash, parse: parseYearFirst},
	{re: regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:` + monthToken + `)\.?,?\s+\d{4}\b`), format: FormatDayMonth, parse: parseDayMonthName},
	{re: regexp.MustCompile(`(?i)\b(?:` + monthToken + `)\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`), format: FormatMonthDay, parse: parseMonthNameDay},
	{re: regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2}\b`), format: FormatDMYSlash2, parse: parseDayFirstShort},
	{re: regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{2}\b`), format: FormatDMYDash2, parse: parseDayFirstShort},
}

// Strict per-format shapes, anchored to the whole candidate.
var (
	strictDayFirst      = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)
	strictYearFirst     = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)
	strictDayFirstShort = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2})$`)
	strictDayMonthName  = regexp.MustCompile(`(?i)^(\d{1,2})(?:st|nd|rd|th)?\s+([a-z]+)\.?,?\s+(\d{4})$`)
	strictMonthNameDay  = regexp.MustCompile(`(?i)^([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})$`)
)

// Numeric candidates are read day-first: 22-03-2024 is 22 March. A month
// field over 12 fails the round trip and falls through to the generic
// parser rather than being swapped.
func parseDayFirst(s string) (time.Time, bool) {
	m := strictDayFirst.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	return makeDate(atoi(m[3]), time.Month(atoi(m[2])), atoi(m[1]))
}

func parseYearFirst(s string) (time.Time, bool) {
	m := strictYearFirst.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	return makeDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]))
}

func parseDayFirstShort(s string) (time.Time, bool) {
	m := strictDayFirstShort.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	return makeDate(expandYear(atoi(m[3])), time.Month(atoi(m[2])), atoi(m[1]))
}

func parseDayMonthName(s string) (time.Time, bool) {
	m := strictDayMonthName.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	month, ok := monthByName(m[2])
	if !ok {
		return time.Time{}, false
	}
	return makeDate(atoi(m[3]), month, atoi(m[1]))
}

func parseMonthNameDay(s string) (time.Time, bool) {
	m := strictMonthNameDay.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	month, ok := monthByName(m[1])
	if !ok {
		return time.Time{}, false
	}
	return makeDate(atoi(m[3]), month, atoi(m[2]))
}

// expandYear widens a two-digit year: below 50 lands in the 2000s, the
// rest in the 1900s.
func expandYear(yy int) int {
	if yy < 50 {
		return 2000 + yy
	}
	return 1900 + yy
}

// makeDate builds a midnight-UTC date and rejects any field set that does
// not survive the round trip, so 31/04 or month 13 never roll over.
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// fallbackLayouts is the generic parser behind FormatAutoDetected, tried in
// order for candidates that fail their strict format.
var fallbackLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

func parseGeneric(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range fallbackLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// atoi is safe here: every call site passes an all-digit submatch.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
