// Package model defines the data contracts for the drop-in program datasets.
// JSON tags mirror the exact keys of the municipal open-data exports, which
// use spaced, title-cased names and the literal string "None" as a null
// sentinel.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// AgeUnbounded is the value an absent or unparsable maximum age degrades to.
// The source data marks open-ended age ranges with the string "None".
const AgeUnbounded = 999

// AgeNone is the null sentinel used throughout the source datasets.
const AgeNone = "None"

// Session is one drop-in offering instance from the session registry.
type Session struct {
	ID          int    `json:"_id"`
	LocationID  int    `json:"Location ID"`
	CourseID    int    `json:"Course_ID"`
	CourseTitle string `json:"Course Title"`
	Section     string `json:"Section"`
	AgeMin      string `json:"Age Min"`
	AgeMax      string `json:"Age Max"`
	DateRange   string `json:"Date Range"`
	StartHour   int    `json:"Start Hour"`
	StartMinute int    `json:"Start Minute"`
	EndHour     int    `json:"End Hour"`
	EndMin      int    `json:"End Min"`
	FirstDate   string `json:"First Date"`
	LastDate    string `json:"Last Date"`
}

// StartMinutes returns the session start as minutes since midnight.
func (s Session) StartMinutes() int {
	return s.StartHour*60 + s.StartMinute
}

// EndMinutes returns the session end as minutes since midnight.
func (s Session) EndMinutes() int {
	return s.EndHour*60 + s.EndMin
}

// StartClock returns the start time as zero-padded "HH:MM".
func (s Session) StartClock() string {
	return fmt.Sprintf("%02d:%02d", s.StartHour, s.StartMinute)
}

// EndClock returns the end time as zero-padded "HH:MM".
func (s Session) EndClock() string {
	return fmt.Sprintf("%02d:%02d", s.EndHour, s.EndMin)
}

// AgeBounds returns the inclusive [min, max] age range for the session.
// Unparsable minimums degrade to 0 and unparsable or "None" maximums to
// AgeUnbounded, so a malformed record is never excluded from filtering.
func (s Session) AgeBounds() (int, int) {
	return AgeMinValue(s.AgeMin), AgeMaxValue(s.AgeMax)
}

// AgeRangeDisplay formats the age range for presentation, e.g. "Ages 8-12"
// or "Ages 60+" when the maximum is open-ended.
func (s Session) AgeRangeDisplay() string {
	if s.AgeMax == AgeNone {
		return fmt.Sprintf("Ages %s+", s.AgeMin)
	}
	return fmt.Sprintf("Ages %s-%s", s.AgeMin, s.AgeMax)
}

// DurationMinutes returns the session length in minutes. Sessions that end
// past midnight (end earlier than start) wrap into the next day.
func (s Session) DurationMinutes() int {
	start, end := s.StartMinutes(), s.EndMinutes()
	if end < start {
		return 24*60 - start + end
	}
	return end - start
}

// AgeMinValue parses a minimum-age string, degrading to 0 when absent or
// unparsable.
func AgeMinValue(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// AgeMaxValue parses a maximum-age string, degrading to AgeUnbounded when
// absent, unparsable, or the "None" sentinel.
func AgeMaxValue(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == AgeNone {
		return AgeUnbounded
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return AgeUnbounded
	}
	return n
}
