package models

// WeekSchedule always carries all seven days; an empty day is a DaySchedule
// with no slots.
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday" bson:"monday"`
	Tuesday   DaySchedule `json:"tuesday" bson:"tuesday"`
	Wednesday DaySchedule `json:"wednesday" bson:"wednesday"`
	Thursday  DaySchedule `json:"thursday" bson:"thursday"`
	Friday    DaySchedule `json:"friday" bson:"friday"`
	Saturday  DaySchedule `json:"saturday" bson:"saturday"`
	Sunday    DaySchedule `json:"sunday" bson:"sunday"`
}

func NewWeekSchedule() WeekSchedule {
	return WeekSchedule{}
}

// Day resolves a normalized weekday to its DaySchedule.
func (w *WeekSchedule) Day(weekday Weekday) *DaySchedule {
	switch weekday {
	case WeekdayMonday:
		return &w.Monday
	case WeekdayTuesday:
		return &w.Tuesday
	case WeekdayWednesday:
		return &w.Wednesday
	case WeekdayThursday:
		return &w.Thursday
	case WeekdayFriday:
		return &w.Friday
	case WeekdaySaturday:
		return &w.Saturday
	case WeekdaySunday:
		return &w.Sunday
	}
	return nil
}

// AddTimeSlot parses the weekday token and delegates to the day's Insert.
func (w *WeekSchedule) AddTimeSlot(weekdayToken string, candidate TimeSlot) error {
	weekday, err := ParseWeekday(weekdayToken)
	if err != nil {
		return err
	}
	return w.Day(weekday).Insert(candidate)
}

// RemoveTimeSlot deletes the slot starting at startMinutes on the given day.
func (w *WeekSchedule) RemoveTimeSlot(weekdayToken string, startMinutes int) error {
	weekday, err := ParseWeekday(weekdayToken)
	if err != nil {
		return err
	}
	return w.Day(weekday).Remove(startMinutes)
}

// TeacherSchedule aggregates the teacher's slots per weekday; all seven keys
// are always present.
func (w WeekSchedule) TeacherSchedule(teacherID string) map[Weekday][]TimeSlot {
	days := make(map[Weekday][]TimeSlot, 7)
	for _, weekday := range AllWeekdays() {
		days[weekday] = w.Day(weekday).SlotsFor(teacherID)
	}
	return days
}

// HasTeacher reports whether any day references the teacher.
func (w WeekSchedule) HasTeacher(teacherID string) bool {
	for _, weekday := range AllWeekdays() {
		if len(w.Day(weekday).SlotsFor(teacherID)) > 0 {
			return true
		}
	}
	return false
}
