package models

import (
	"fmt"
	"strconv"
	"timetable-service/internal/pkg/exceptions"
)

const minutesPerDay = 24 * 60

// TimeInterval is a half-open [Start, End) range of minutes within one day.
type TimeInterval struct {
	Start int `json:"start" bson:"start"`
	End   int `json:"end" bson:"end"`
}

func NewTimeInterval(start, end int) (TimeInterval, error) {
	if start < 0 || end >= minutesPerDay {
		return TimeInterval{}, exceptions.ErrInvalidInterval(fmt.Errorf("minutes out of range: start=%d end=%d", start, end))
	}
	if start >= end {
		return TimeInterval{}, exceptions.ErrInvalidInterval(fmt.Errorf("start=%d end=%d", start, end))
	}
	return TimeInterval{Start: start, End: end}, nil
}

// NewTimeIntervalFromClock builds an interval from two HH:MM strings.
func NewTimeIntervalFromClock(startClock, endClock string) (TimeInterval, error) {
	start, err := ParseClockTime(startClock)
	if err != nil {
		return TimeInterval{}, err
	}
	end, err := ParseClockTime(endClock)
	if err != nil {
		return TimeInterval{}, err
	}
	return NewTimeInterval(start, end)
}

// Overlaps is symmetric; touching endpoints do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start < other.End && other.Start < i.End
}

func (i TimeInterval) StartClock() string {
	return formatClockTime(i.Start)
}

func (i TimeInterval) EndClock() string {
	return formatClockTime(i.End)
}

// ParseClockTime converts a 24-hour HH:MM string to minutes of day.
func ParseClockTime(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, exceptions.ErrInvalidTimeFormat(fmt.Errorf("got %q", clock))
	}
	hours, err := strconv.Atoi(clock[:2])
	if err != nil {
		return 0, exceptions.ErrInvalidTimeFormat(fmt.Errorf("got %q", clock))
	}
	minutes, err := strconv.Atoi(clock[3:])
	if err != nil {
		return 0, exceptions.ErrInvalidTimeFormat(fmt.Errorf("got %q", clock))
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, exceptions.ErrInvalidTimeFormat(fmt.Errorf("got %q", clock))
	}
	return hours*60 + minutes, nil
}

func formatClockTime(minutesOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minutesOfDay/60, minutesOfDay%60)
}
