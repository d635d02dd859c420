package models

import (
	"fmt"
	"strings"
	"timetable-service/internal/pkg/exceptions"
)

type Weekday string

const (
	WeekdayMonday    Weekday = "monday"
	WeekdayTuesday   Weekday = "tuesday"
	WeekdayWednesday Weekday = "wednesday"
	WeekdayThursday  Weekday = "thursday"
	WeekdayFriday    Weekday = "friday"
	WeekdaySaturday  Weekday = "saturday"
	WeekdaySunday    Weekday = "sunday"
)

// AllWeekdays returns the seven weekdays in Monday-first order.
func AllWeekdays() []Weekday {
	return []Weekday{
		WeekdayMonday,
		WeekdayTuesday,
		WeekdayWednesday,
		WeekdayThursday,
		WeekdayFriday,
		WeekdaySaturday,
		WeekdaySunday,
	}
}

// ParseWeekday maps a case-insensitive English weekday token to its
// normalized form.
func ParseWeekday(token string) (Weekday, error) {
	normalized := Weekday(strings.ToLower(strings.TrimSpace(token)))
	switch normalized {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday,
		WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return normalized, nil
	}
	return "", exceptions.ErrUnknownWeekday(fmt.Errorf("got %q", token))
}
