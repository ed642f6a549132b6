package model

import (
	"fmt"
	"time"
)

// Shift one of the two 12-hour operating windows
type Shift string

const (
	ShiftDay   Shift = "day"   // 06:00-18:00 local
	ShiftNight Shift = "night" // the complement
)

const shiftDateLayout = "2006-01-02"

// CurrentShift determines the shift active at the given instant. The
// day-shift interval is closed-open [06:00, 18:00) on whatever local clock
// the caller's time carries.
func CurrentShift(now time.Time) Shift {
	hour := now.Hour()
	if hour >= 6 && hour < 18 {
		return ShiftDay
	}
	return ShiftNight
}

// ParseShift validates a shift label from an external source.
func ParseShift(s string) (Shift, error) {
	switch Shift(s) {
	case ShiftDay, ShiftNight:
		return Shift(s), nil
	default:
		return "", fmt.Errorf("invalid shift %q: must be %q or %q", s, ShiftDay, ShiftNight)
	}
}

// FormatShiftDate renders a calendar date the way the store keys it.
func FormatShiftDate(t time.Time) string {
	return t.Format(shiftDateLayout)
}

// ParseShiftDate parses an ISO calendar date from an external source.
func ParseShiftDate(s string) (time.Time, error) {
	t, err := time.Parse(shiftDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
