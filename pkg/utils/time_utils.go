package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// UnparseableTimeKey sorts after every valid clock time (max valid key is 1439).
const UnparseableTimeKey = 9999

var (
	clock24Re = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	clock12Re = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
)

// ClockMinutes converts an activity time string to minutes since midnight.
// Both "HH:MM" and "H:MM AM/PM" forms are accepted; an empty or unparseable
// string yields UnparseableTimeKey so such activities order last.
func ClockMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return UnparseableTimeKey
	}

	if m := clock24Re.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hours > 23 || minutes > 59 {
			return UnparseableTimeKey
		}
		return hours*60 + minutes
	}

	if m := clock12Re.FindStringSubmatch(strings.ToUpper(s)); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hours < 1 || hours > 12 || minutes > 59 {
			return UnparseableTimeKey
		}
		if m[3] == "PM" && hours != 12 {
			hours += 12
		}
		if m[3] == "AM" && hours == 12 {
			hours = 0
		}
		return hours*60 + minutes
	}

	return UnparseableTimeKey
}
