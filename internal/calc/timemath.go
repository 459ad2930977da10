package calc

import (
	"regexp"
	"strconv"
)

// clockRe matches "H:MM" or "HH:MM"; range checks happen after the match.
var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// HoursBetween returns the elapsed decimal hours between two "HH:MM" clock
// times. An empty start or end means the role did not work and yields 0.
// When end is earlier than start the span is assumed to cross midnight and
// 24 hours are added. Identical start and end yield 0, not 24: a worker
// logging the same entry and exit is assumed to have logged nothing.
//
// Malformed strings (wrong pattern, hour >= 24, minute >= 60) yield 0.
// This function never returns NaN; its output feeds money totals.
func HoursBetween(start, end string) float64 {
	if start == "" || end == "" {
		return 0
	}

	s, ok := parseClockMinutes(start)
	if !ok {
		return 0
	}
	e, ok := parseClockMinutes(end)
	if !ok {
		return 0
	}

	if e == s {
		return 0
	}
	if e < s {
		e += 24 * 60
	}
	return float64(e-s) / 60
}

// parseClockMinutes converts an "HH:MM" string to minutes since midnight.
func parseClockMinutes(s string) (int, bool) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if h >= 24 || min >= 60 {
		return 0, false
	}
	return h*60 + min, true
}
