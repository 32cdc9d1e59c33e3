// Package engine implements the multi-predicate query engine over the
// session dataset, plus the presentation-ordering comparators and the
// shareable filter serialization.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel filter values.
const (
	DateThisWeek = "this-week"
	TimeAny      = "Any time"
)

// isoDate is the date layout used throughout the datasets. All dates are
// zero-padded ISO strings, so lexicographic comparison is ordering-safe.
const isoDate = "2006-01-02"

// CurrentDate formats now as a local-timezone ISO date. The string is built
// from local date fields, never via UTC serialization, so it cannot be off
// by a day across timezones.
func CurrentDate(now time.Time) string {
	return now.Format(isoDate)
}

// DefaultDate returns the date a fresh query should target: today, or
// tomorrow once the evening is effectively over (22:00 or later).
func DefaultDate(now time.Time) string {
	if now.Hour() >= 22 {
		return now.AddDate(0, 0, 1).Format(isoDate)
	}
	return CurrentDate(now)
}

// DefaultTime returns the time a fresh query should target: the next
// 30-minute slot, or TimeAny outside the 06:00-23:30 service window.
func DefaultTime(now time.Time) string {
	hour, minute := now.Hour(), now.Minute()
	if hour >= 22 || hour < 6 {
		return TimeAny
	}

	nextHour, nextMinute := hour, 30
	if minute > 30 {
		nextMinute = 0
		nextHour = (nextHour + 1) % 24
	}
	if nextHour >= 24 || (nextHour == 23 && nextMinute > 30) {
		return TimeAny
	}
	return fmt.Sprintf("%02d:%02d", nextHour, nextMinute)
}

// ThisWeekWindow returns the inclusive 7-day [start, end] window beginning
// today, as local ISO date strings.
func ThisWeekWindow(now time.Time) (string, string) {
	return CurrentDate(now), now.AddDate(0, 0, 6).Format(isoDate)
}

// DateInRange reports whether target falls within a "<start> to <end>"
// date-range string, inclusive on both ends. Comparison is lexicographic,
// which is exact for zero-padded ISO dates. A malformed range matches
// nothing.
func DateInRange(target, dateRange string) bool {
	start, end, ok := strings.Cut(dateRange, " to ")
	if !ok {
		return false
	}
	return target >= start && target <= end
}

// MinutesOfDay converts an hour/minute pair to minutes since midnight.
func MinutesOfDay(hour, minute int) int {
	return hour*60 + minute
}

// ParseClock parses "HH:MM" (24h) or "H:MM AM"/"H:MM PM" into minutes
// since midnight. Reports false for anything else, including TimeAny.
func ParseClock(s string) (int, bool) {
	clock, period, _ := strings.Cut(strings.TrimSpace(s), " ")
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, false
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}

	total := hours*60 + minutes
	switch strings.ToUpper(strings.TrimSpace(period)) {
	case "PM":
		if hours != 12 {
			total += 12 * 60
		}
	case "AM":
		if hours == 12 {
			total -= 12 * 60
		}
	}
	return total, true
}

// DayOfWeek returns the weekday name for an ISO date string, parsed as
// local time. Malformed dates return an empty string.
func DayOfWeek(date string) string {
	t, err := time.ParseInLocation(isoDate, date, time.Local)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

// FormatAMPM converts a 24h "HH:MM" clock to "H:MM AM/PM" display form.
// TimeAny passes through unchanged.
func FormatAMPM(clock string) string {
	if strings.EqualFold(clock, TimeAny) {
		return clock
	}
	minutes, ok := ParseClock(clock)
	if !ok {
		return clock
	}
	hours := minutes / 60
	period := "AM"
	display := hours
	switch {
	case hours == 0:
		display = 12
	case hours == 12:
		period = "PM"
	case hours > 12:
		display = hours - 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes%60, period)
}
