package models

import (
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/responses"
)

func (t TimeSlot) ConvertIntoResponse() responses.TimeSlot {
	return responses.TimeSlot{
		StartTime: t.Interval.StartClock(),
		EndTime:   t.Interval.EndClock(),
		SubjectID: t.SubjectID,
		TeacherID: t.TeacherID,
		Classroom: t.Classroom,
		IsBreak:   t.IsBreak,
		BreakType: string(t.BreakType),
	}
}

func convertSlots(slots []TimeSlot) []responses.TimeSlot {
	converted := make([]responses.TimeSlot, len(slots))
	for i, slot := range slots {
		converted[i] = slot.ConvertIntoResponse()
	}
	return converted
}

func (w WeekSchedule) ConvertIntoResponse() responses.Week {
	week := make(responses.Week, 7)
	for _, weekday := range AllWeekdays() {
		week[string(weekday)] = convertSlots(w.Day(weekday).Slots)
	}
	return week
}

func (s *Schedule) ConvertIntoResponse() *responses.Schedule {
	holidays := make([]responses.Holiday, len(s.Holidays))
	for i, holiday := range s.Holidays {
		holidays[i] = responses.Holiday{
			Date: holiday.Date.Format(constvars.DateLayoutYMD),
			Name: holiday.Name,
			Kind: holiday.Kind,
		}
	}
	specials := make([]responses.SpecialSchedule, len(s.SpecialSchedules))
	for i, special := range s.SpecialSchedules {
		specials[i] = responses.SpecialSchedule{
			Date:   special.Date.Format(constvars.DateLayoutYMD),
			Reason: special.Reason,
			Week:   special.OverrideWeek.ConvertIntoResponse(),
		}
	}
	return &responses.Schedule{
		ID:               s.ID,
		SchoolID:         s.SchoolID,
		ClassID:          s.ClassID,
		AcademicYear:     s.AcademicYear,
		Semester:         string(s.Semester),
		EffectiveFrom:    s.EffectiveFrom.Format(constvars.DateLayoutYMD),
		EffectiveTo:      s.EffectiveTo.Format(constvars.DateLayoutYMD),
		IsActive:         s.IsActive,
		Version:          s.Version,
		Week:             s.Week.ConvertIntoResponse(),
		Holidays:         holidays,
		SpecialSchedules: specials,
	}
}
