package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestSchedule(t *testing.T) *Schedule {
	t.Helper()
	from := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	schedule, err := NewSchedule("school-1", "class-7a", "2025-2026", SemesterSecond, from, to)
	assert.NoError(t, err)
	return schedule
}

func TestNewSchedule(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		schedule := newTestSchedule(t)
		assert.True(t, schedule.IsActive)
		assert.Equal(t, int64(1), schedule.Version)
		assert.Empty(t, schedule.Holidays)
		assert.Empty(t, schedule.SpecialSchedules)
	})

	t.Run("Inverted Date Range Rejected", func(t *testing.T) {
		from := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
		_, err := NewSchedule("school-1", "class-7a", "2025-2026", SemesterSecond, from, to)
		assert.Error(t, err)
	})

	t.Run("Single Day Window Allowed", func(t *testing.T) {
		day := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
		schedule, err := NewSchedule("school-1", "class-7a", "2025-2026", SemesterSecond, day, day)
		assert.NoError(t, err)
		assert.True(t, schedule.IsValidOn(day))
	})

	t.Run("Times Truncated To Day", func(t *testing.T) {
		from := time.Date(2026, 1, 12, 15, 4, 5, 0, time.UTC)
		to := time.Date(2026, 6, 30, 8, 0, 0, 0, time.UTC)
		schedule, err := NewSchedule("school-1", "class-7a", "2025-2026", SemesterSecond, from, to)
		assert.NoError(t, err)
		assert.Equal(t, 0, schedule.EffectiveFrom.Hour())
		assert.Equal(t, 0, schedule.EffectiveTo.Hour())
	})
}

func TestParseSemester(t *testing.T) {
	first, err := ParseSemester("first")
	assert.NoError(t, err)
	assert.Equal(t, SemesterFirst, first)

	second, err := ParseSemester("second")
	assert.NoError(t, err)
	assert.Equal(t, SemesterSecond, second)

	_, err = ParseSemester("third")
	assert.Error(t, err)
	_, err = ParseSemester("")
	assert.Error(t, err)
}

func TestScheduleHolidays(t *testing.T) {
	schedule := newTestSchedule(t)
	date := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)

	schedule.AddHoliday(Holiday{Date: date, Name: "Founders Day", Kind: "school"})
	assert.Len(t, schedule.Holidays, 1)

	t.Run("Same Date Replaces Entry", func(t *testing.T) {
		schedule.AddHoliday(Holiday{Date: date, Name: "National Holiday", Kind: "national"})
		assert.Len(t, schedule.Holidays, 1)
		assert.Equal(t, "National Holiday", schedule.Holidays[0].Name)
	})

	t.Run("HolidayOn Matches Regardless Of Time Of Day", func(t *testing.T) {
		holiday := schedule.HolidayOn(time.Date(2026, 3, 17, 13, 30, 0, 0, time.UTC))
		assert.NotNil(t, holiday)
		assert.Equal(t, "National Holiday", holiday.Name)
	})

	t.Run("HolidayOn Other Date", func(t *testing.T) {
		assert.Nil(t, schedule.HolidayOn(time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)))
	})
}

func TestScheduleEffectiveOn(t *testing.T) {
	schedule := newTestSchedule(t)
	assert.NoError(t, schedule.AddTimeSlot("monday", lessonSlot(t, "08:00", "08:45", "math", "t1", "r1")))

	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	t.Run("Base Week By Default", func(t *testing.T) {
		week := schedule.EffectiveOn(monday)
		assert.Len(t, week.Monday.Slots, 1)
	})

	t.Run("Special Schedule Overrides Base Week", func(t *testing.T) {
		override := NewWeekSchedule()
		assert.NoError(t, override.AddTimeSlot("monday", lessonSlot(t, "09:00", "09:30", "assembly", "t9", "hall")))
		schedule.AddSpecialSchedule(SpecialSchedule{Date: monday, Reason: "exam week", OverrideWeek: override})

		week := schedule.EffectiveOn(monday)
		assert.Len(t, week.Monday.Slots, 1)
		assert.Equal(t, "assembly", week.Monday.Slots[0].SubjectID)
	})

	t.Run("Holiday Beats Special Schedule", func(t *testing.T) {
		schedule.AddHoliday(Holiday{Date: monday, Name: "Snow Day"})

		week := schedule.EffectiveOn(monday)
		assert.Empty(t, week.Monday.Slots)
		assert.Empty(t, week.Friday.Slots)
	})

	t.Run("Other Dates Unaffected", func(t *testing.T) {
		nextMonday := monday.AddDate(0, 0, 7)
		week := schedule.EffectiveOn(nextMonday)
		assert.Equal(t, "math", week.Monday.Slots[0].SubjectID)
	})
}

func TestScheduleAddSpecialSchedule(t *testing.T) {
	schedule := newTestSchedule(t)
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	first := NewWeekSchedule()
	assert.NoError(t, first.AddTimeSlot("wednesday", lessonSlot(t, "08:00", "08:30", "math", "t1", "r1")))
	schedule.AddSpecialSchedule(SpecialSchedule{Date: date, Reason: "short day", OverrideWeek: first})

	second := NewWeekSchedule()
	assert.NoError(t, second.AddTimeSlot("wednesday", lessonSlot(t, "10:00", "10:30", "sports", "t2", "field")))
	schedule.AddSpecialSchedule(SpecialSchedule{Date: date, Reason: "sports day", OverrideWeek: second})

	assert.Len(t, schedule.SpecialSchedules, 1, "same date replaces the earlier override")
	assert.Equal(t, "sports day", schedule.SpecialSchedules[0].Reason)
}

func TestScheduleIsValidOn(t *testing.T) {
	schedule := newTestSchedule(t)

	t.Run("Inclusive Bounds", func(t *testing.T) {
		assert.True(t, schedule.IsValidOn(time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)))
		assert.True(t, schedule.IsValidOn(time.Date(2026, 6, 30, 23, 59, 0, 0, time.UTC)))
	})

	t.Run("Outside Window", func(t *testing.T) {
		assert.False(t, schedule.IsValidOn(time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)))
		assert.False(t, schedule.IsValidOn(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("Inactive Schedule Never Valid", func(t *testing.T) {
		schedule.IsActive = false
		assert.False(t, schedule.IsValidOn(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)))
	})
}

func TestScheduleWeekMutations(t *testing.T) {
	schedule := newTestSchedule(t)

	assert.NoError(t, schedule.AddTimeSlot("monday", lessonSlot(t, "08:00", "08:45", "math", "t1", "r1")))
	assert.Error(t, schedule.AddTimeSlot("monday", lessonSlot(t, "08:30", "09:15", "physics", "t1", "r2")))
	assert.Equal(t, int64(1), schedule.Version, "in-memory mutation never bumps the version")

	assert.NoError(t, schedule.RemoveTimeSlot("monday", 480))
	assert.Empty(t, schedule.Week.Monday.Slots)
}
