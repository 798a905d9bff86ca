package dateparse

import "time"

// Consistency is the verdict of CheckConsistency.
type Consistency string

const (
	Consistent   Consistency = "Consistent"
	Inconsistent Consistency = "Inconsistent"
	Unknown      Consistency = "Unknown"
)

// consistencyWindow is the widest span a set of dates may cover while still
// plausibly describing the same event.
const consistencyWindow = 30 * 24 * time.Hour

// CheckConsistency cross-validates dates extracted from different regions
// of a document. Nil entries and entries without a date are ignored. Fewer
// than two dates is Unknown; otherwise the verdict is Consistent exactly
// when the earliest and latest date are at most 30 days apart.
func CheckConsistency(infos ...*DateInformation) Consistency {
	var dates []time.Time
	for _, info := range infos {
		if info == nil || info.Date.IsZero() {
			continue
		}
		dates = append(dates, info.Date)
	}
	if len(dates) < 2 {
		return Unknown
	}

	earliest, latest := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}
	if latest.Sub(earliest) <= consistencyWindow {
		return Consistent
	}
	return Inconsistent
}
