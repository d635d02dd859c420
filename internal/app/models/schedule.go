package models

import (
	"fmt"
	"time"
	"timetable-service/internal/pkg/exceptions"
)

type Semester string

const (
	SemesterFirst  Semester = "first"
	SemesterSecond Semester = "second"
)

func ParseSemester(token string) (Semester, error) {
	switch Semester(token) {
	case SemesterFirst:
		return SemesterFirst, nil
	case SemesterSecond:
		return SemesterSecond, nil
	}
	return "", exceptions.ErrInvalidSemester(fmt.Errorf("got %q", token))
}

// Holiday suppresses every slot on its date, including special-schedule
// overrides.
type Holiday struct {
	Date time.Time `json:"date" bson:"date"`
	Name string    `json:"name" bson:"name"`
	Kind string    `json:"kind" bson:"kind"`
}

// SpecialSchedule replaces the base week on one date, e.g. shortened bell
// times or a substitution day.
type SpecialSchedule struct {
	Date         time.Time    `json:"date" bson:"date"`
	Reason       string       `json:"reason" bson:"reason"`
	OverrideWeek WeekSchedule `json:"overrideWeek" bson:"overrideWeek"`
}

// Schedule is the aggregate root of one class's weekly timetable for an
// academic year and semester. It owns its week, holidays and special
// schedules; SchoolID and ClassID are weak references resolved by the
// identity store. Version is bumped only by the repository on a committed
// write, never by in-memory mutation.
type Schedule struct {
	ID               string            `json:"id" bson:"_id,omitempty"`
	SchoolID         string            `json:"schoolId" bson:"schoolId"`
	ClassID          string            `json:"classId" bson:"classId"`
	AcademicYear     string            `json:"academicYear" bson:"academicYear"`
	Semester         Semester          `json:"semester" bson:"semester"`
	Week             WeekSchedule      `json:"week" bson:"week"`
	EffectiveFrom    time.Time         `json:"effectiveFrom" bson:"effectiveFrom"`
	EffectiveTo      time.Time         `json:"effectiveTo" bson:"effectiveTo"`
	IsActive         bool              `json:"isActive" bson:"isActive"`
	Version          int64             `json:"version" bson:"version"`
	Holidays         []Holiday         `json:"holidays" bson:"holidays"`
	SpecialSchedules []SpecialSchedule `json:"specialSchedules" bson:"specialSchedules"`
	TimeModel        `bson:",inline"`
}

func NewSchedule(schoolID, classID, academicYear string, semester Semester, effectiveFrom, effectiveTo time.Time) (*Schedule, error) {
	effectiveFrom = TruncateToDay(effectiveFrom)
	effectiveTo = TruncateToDay(effectiveTo)
	if effectiveFrom.After(effectiveTo) {
		return nil, exceptions.ErrInvalidDateRange(fmt.Errorf("from=%s to=%s", effectiveFrom.Format("2006-01-02"), effectiveTo.Format("2006-01-02")))
	}
	return &Schedule{
		SchoolID:      schoolID,
		ClassID:       classID,
		AcademicYear:  academicYear,
		Semester:      semester,
		Week:          NewWeekSchedule(),
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
		IsActive:      true,
		Version:       1,
	}, nil
}

// AddTimeSlot validates against the base week only; special-schedule
// overrides are not cross-checked here.
func (s *Schedule) AddTimeSlot(weekdayToken string, candidate TimeSlot) error {
	return s.Week.AddTimeSlot(weekdayToken, candidate)
}

func (s *Schedule) RemoveTimeSlot(weekdayToken string, startMinutes int) error {
	return s.Week.RemoveTimeSlot(weekdayToken, startMinutes)
}

// AddHoliday keeps holidays a set keyed by date; adding a date twice
// replaces the earlier entry.
func (s *Schedule) AddHoliday(holiday Holiday) {
	holiday.Date = TruncateToDay(holiday.Date)
	for i, existing := range s.Holidays {
		if SameDate(existing.Date, holiday.Date) {
			s.Holidays[i] = holiday
			return
		}
	}
	s.Holidays = append(s.Holidays, holiday)
}

// AddSpecialSchedule replaces any earlier override for the same date.
func (s *Schedule) AddSpecialSchedule(special SpecialSchedule) {
	special.Date = TruncateToDay(special.Date)
	for i, existing := range s.SpecialSchedules {
		if SameDate(existing.Date, special.Date) {
			s.SpecialSchedules[i] = special
			return
		}
	}
	s.SpecialSchedules = append(s.SpecialSchedules, special)
}

// HolidayOn returns the holiday entry for the date, if any.
func (s *Schedule) HolidayOn(date time.Time) *Holiday {
	for i := range s.Holidays {
		if SameDate(s.Holidays[i].Date, date) {
			return &s.Holidays[i]
		}
	}
	return nil
}

// SpecialScheduleOn returns the override entry for the date, if any.
func (s *Schedule) SpecialScheduleOn(date time.Time) *SpecialSchedule {
	for i := range s.SpecialSchedules {
		if SameDate(s.SpecialSchedules[i].Date, date) {
			return &s.SpecialSchedules[i]
		}
	}
	return nil
}

// EffectiveOn resolves the week in force on a date: a holiday yields an empty
// week and beats any same-date special schedule; otherwise a special schedule
// overrides the base week.
func (s *Schedule) EffectiveOn(date time.Time) WeekSchedule {
	if s.HolidayOn(date) != nil {
		return NewWeekSchedule()
	}
	if special := s.SpecialScheduleOn(date); special != nil {
		return special.OverrideWeek
	}
	return s.Week
}

// IsValidOn is inclusive on both ends of the validity window.
func (s *Schedule) IsValidOn(date time.Time) bool {
	date = TruncateToDay(date)
	return s.IsActive && !date.Before(s.EffectiveFrom) && !date.After(s.EffectiveTo)
}
