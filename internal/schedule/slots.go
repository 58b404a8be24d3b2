// Package schedule implements the time arithmetic behind doctor availability:
// 12-hour wall-clock parsing, weekday indexing, and candidate slot generation.
// Everything here is pure so the availability usecase and its tests share the
// exact same behavior.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidClock     = errors.New("invalid time, expected hh:mm AM/PM")
	ErrInvalidDuration  = errors.New("slot duration must be positive")
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 (Monday) and 6 (Sunday)")
)

// Weekday names indexed by the Monday=0 convention.
var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayIndex maps a date to the Monday=0 .. Sunday=6 convention.
// time.Weekday has Sunday=0, so the index is rotated.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DayName returns the English weekday name for a Monday=0 index.
func DayName(dayOfWeek int) (string, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return "", ErrInvalidDayOfWeek
	}
	return dayNames[dayOfWeek], nil
}

// ParseClock converts a 12-hour wall-clock string ("09:00 AM", "12:30 PM")
// to minutes since midnight. 12:00 AM maps to 0 and 12:00 PM to 720.
func ParseClock(s string) (int, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return 0, ErrInvalidClock
	}

	meridiem := strings.ToUpper(parts[1])
	if meridiem != "AM" && meridiem != "PM" {
		return 0, ErrInvalidClock
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return 0, ErrInvalidClock
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, ErrInvalidClock
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, ErrInvalidClock
	}

	// 12 AM is hour 0, 12 PM is hour 12.
	if hour == 12 {
		hour = 0
	}
	if meridiem == "PM" {
		hour += 12
	}

	return hour*60 + minute, nil
}

// FormatClock converts minutes since midnight back to the zero-padded
// 12-hour form used throughout the appointment tables ("09:00 AM").
func FormatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440

	hour := minutes / 60
	minute := minutes % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%02d:%02d %s", display, minute, meridiem)
}

// GenerateSlots produces the ordered candidate slot times inside a working
// window: the first slot starts at startTime and a new one begins every
// durationMinutes while the whole slot still fits before endTime.
// An inverted or zero-length window yields an empty list, not an error —
// windows are validated at write time, so this only degrades legacy data.
func GenerateSlots(startTime, endTime string, durationMinutes int) ([]string, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	start, err := ParseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for t := start; t+durationMinutes <= end; t += durationMinutes {
		slots = append(slots, FormatClock(t))
	}
	return slots, nil
}

// Capacity returns how many slots of durationMinutes fit in the window,
// i.e. floor((end-start)/duration), or 0 for inverted windows.
func Capacity(startTime, endTime string, durationMinutes int) (int, error) {
	if durationMinutes <= 0 {
		return 0, ErrInvalidDuration
	}
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, err
	}
	if end <= start {
		return 0, nil
	}
	return (end - start) / durationMinutes, nil
}
