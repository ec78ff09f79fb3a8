package report

import (
	"strconv"
	"strings"
)

// CATTime is a tourniquet drill timing parsed from the uncontrolled text
// field the records store. Invalid readings keep their raw text and are
// excluded from numeric aggregates, but the drill itself still counts toward
// totals.
type CATTime struct {
	Seconds int
	Raw     string
	valid   bool
}

// ParseCATTime parses a raw timing value. Only non-negative integers are
// valid; anything else ("40s", "-", "", "fast") is an invalid reading.
func ParseCATTime(raw string) CATTime {
	trimmed := strings.TrimSpace(raw)
	seconds, err := strconv.Atoi(trimmed)
	if err != nil || seconds < 0 {
		return CATTime{Raw: raw}
	}
	return CATTime{Seconds: seconds, Raw: raw, valid: true}
}

// Valid reports whether the reading parsed as a non-negative integer
func (t CATTime) Valid() bool {
	return t.valid
}
