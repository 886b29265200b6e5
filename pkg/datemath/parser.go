package datemath

import (
	"regexp"
	"strings"
	"time"
)

// stampLayouts are the recognized date/time formats, tried in order.
// First match wins, so the US month-first layouts come before the
// day-first layouts: an ambiguous "03/04/2025" resolves as March 4.
var stampLayouts = []string{
	"2006-01-02T15:04:05Z07:00", // ISO with offset
	"2006-01-02T15:04:05",       // ISO without offset
	"2006-01-02 15:04:05",       // space-separated date+time
	"2006-01-02 15:04",          // date with time, no seconds
	"2006-01-02",                // date only
	"01/02/2006 15:04:05",       // US format with time
	"01/02/2006 15:04",          // US format with time, no seconds
	"01/02/2006",                // US date
	"02/01/2006 15:04:05",       // day-first format with time
	"02/01/2006 15:04",          // day-first format with time, no seconds
	"02/01/2006",                // day-first date
}

// naturalPattern matches expressions such as "March 18, 2025 at 3:00 PM".
// The time-of-day portion is optional.
var naturalPattern = regexp.MustCompile(`(\w+ \d{1,2}, \d{4})(?:.+?(\d{1,2}(?::\d{2})? [AP]M))?`)

// ParseStamp attempts to parse a date/time string against the recognized
// layouts, then falls back to a natural-language "Month Day, Year" pattern
// where a missing time-of-day defaults to noon. Returns false when nothing
// matches.
func ParseStamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range stampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return parseNatural(s)
}

func parseNatural(s string) (time.Time, bool) {
	m := naturalPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	datePart := m[1]
	timePart := m[2]
	if timePart == "" {
		timePart = "12:00 PM"
	}

	combined := datePart + " " + timePart
	if t, err := time.Parse("January 2, 2006 3:04 PM", combined); err == nil {
		return t, true
	}
	if t, err := time.Parse("January 2, 2006 3 PM", combined); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Canonical renders t as local naive components followed by the given fixed
// UTC offset label (e.g. "+05:30"). No timezone conversion happens: the
// clock components are emitted as parsed and labeled with the deployment's
// default offset.
func Canonical(t time.Time, offset string) string {
	return t.Format("2006-01-02T15:04:05") + offset
}

// HumanDateTime renders t for user-facing event listings.
func HumanDateTime(t time.Time) string {
	return t.Format("January 2, 2006 at 3:04 PM")
}

// HumanDate renders a date-only value for all-day events.
func HumanDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
