package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// MinutesOfDay parses an "HH:MM" clock value into minutes since midnight.
// Both "9:30" and "09:30" are accepted.
func MinutesOfDay(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, ErrInvalidTimeFormat
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, ErrInvalidTimeFormat
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeFormat
	}

	return hour*60 + minute, nil
}

// FormatMinutes renders minutes since midnight as zero-padded "HH:MM", the
// canonical form stored and compared lexicographically.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DayBounds returns the inclusive bounds of the calendar day containing t,
// from midnight up to the last nanosecond before the next midnight. The
// location of t is preserved.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Intervals that only touch at an endpoint do
// not overlap, so a booking may start exactly when another one ends.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
