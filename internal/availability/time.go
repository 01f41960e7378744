// Package availability derives the bookable slot grid for a doctor's week
// from their declared open intervals and the current booking set.
package availability

import (
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`(\d+):(\d+)(AM|PM)`)

// ParseTime converts a clock string like "9:00AM" or " 2:30pm " to minutes
// since midnight. The AM/PM suffix is case-insensitive and surrounding
// whitespace is tolerated. 12PM is noon (720) and 12AM is midnight (0).
// ok is false when the string does not contain a recognizable time, so
// midnight is never conflated with a parse failure.
func ParseTime(s string) (minutes int, ok bool) {
	match := clockPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if match == nil {
		return 0, false
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, false
	}

	switch match[3] {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return hour*60 + minute, true
}

// FormatTime renders minutes since midnight in the canonical display form:
// no leading zero on the hour, two-digit minute, AM/PM with no space.
func FormatTime(minutes int) string {
	hour := minutes / 60
	minute := minutes % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour
	switch {
	case hour > 12:
		displayHour = hour - 12
	case hour == 0:
		displayHour = 12
	}

	return strconv.Itoa(displayHour) + ":" + pad2(minute) + period
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
