package models

import (
	"testing"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func mustInterval(t *testing.T, startClock, endClock string) TimeInterval {
	t.Helper()
	interval, err := NewTimeIntervalFromClock(startClock, endClock)
	assert.NoError(t, err)
	return interval
}

func lessonSlot(t *testing.T, startClock, endClock, subjectID, teacherID, classroom string) TimeSlot {
	t.Helper()
	return NewTimeSlot(mustInterval(t, startClock, endClock), subjectID, teacherID, classroom, false, "")
}

func breakSlot(t *testing.T, startClock, endClock string, breakType BreakType) TimeSlot {
	t.Helper()
	return NewTimeSlot(mustInterval(t, startClock, endClock), "", "", "", true, breakType)
}

func TestDayScheduleInsert(t *testing.T) {
	t.Run("Insert Keeps Slots Sorted By Start", func(t *testing.T) {
		day := &DaySchedule{}

		assert.NoError(t, day.Insert(lessonSlot(t, "10:00", "10:45", "math", "t1", "r1")))
		assert.NoError(t, day.Insert(lessonSlot(t, "08:00", "08:45", "physics", "t2", "r2")))
		assert.NoError(t, day.Insert(lessonSlot(t, "09:00", "09:45", "biology", "t3", "r3")))

		assert.Len(t, day.Slots, 3)
		assert.Equal(t, "08:00", day.Slots[0].Interval.StartClock())
		assert.Equal(t, "09:00", day.Slots[1].Interval.StartClock())
		assert.Equal(t, "10:00", day.Slots[2].Interval.StartClock())
	})

	t.Run("Teacher Conflict Rejected", func(t *testing.T) {
		day := &DaySchedule{}
		assert.NoError(t, day.Insert(lessonSlot(t, "08:00", "09:00", "math", "t1", "r1")))

		err := day.Insert(lessonSlot(t, "08:30", "09:30", "physics", "t1", "r2"))
		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientTeacherConflict, customErr.ClientMessage)
		assert.Len(t, day.Slots, 1, "failed insert must not mutate the day")
	})

	t.Run("Classroom Conflict Rejected", func(t *testing.T) {
		day := &DaySchedule{}
		assert.NoError(t, day.Insert(lessonSlot(t, "08:00", "09:00", "math", "t1", "r1")))

		err := day.Insert(lessonSlot(t, "08:30", "09:30", "physics", "t2", "r1"))
		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientClassroomConflict, customErr.ClientMessage)
	})

	t.Run("Teacher Conflict Reported Before Classroom Conflict", func(t *testing.T) {
		day := &DaySchedule{}
		assert.NoError(t, day.Insert(lessonSlot(t, "08:00", "09:00", "math", "t1", "r1")))

		// Same teacher and same classroom: the teacher conflict wins.
		err := day.Insert(lessonSlot(t, "08:30", "09:30", "physics", "t1", "r1"))
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientTeacherConflict, customErr.ClientMessage)
	})

	t.Run("Touching Slots Allowed", func(t *testing.T) {
		day := &DaySchedule{}
		assert.NoError(t, day.Insert(lessonSlot(t, "08:00", "08:45", "math", "t1", "r1")))
		assert.NoError(t, day.Insert(lessonSlot(t, "08:45", "09:30", "physics", "t1", "r1")))
		assert.Len(t, day.Slots, 2)
	})

	t.Run("Overlapping Breaks Do Not Conflict", func(t *testing.T) {
		day := &DaySchedule{}
		assert.NoError(t, day.Insert(breakSlot(t, "10:00", "10:15", BreakTypeShort)))
		assert.NoError(t, day.Insert(breakSlot(t, "10:00", "10:30", BreakTypeLunch)))
		assert.Len(t, day.Slots, 2)
	})

	t.Run("Break Overlapping Lesson Allowed", func(t *testing.T) {
		day := &DaySchedule{}
		assert.NoError(t, day.Insert(lessonSlot(t, "08:00", "09:00", "math", "t1", "r1")))
		assert.NoError(t, day.Insert(breakSlot(t, "08:30", "08:45", BreakTypeShort)))
	})
}

func TestDayScheduleRemove(t *testing.T) {
	t.Run("Remove Existing Slot", func(t *testing.T) {
		day := &DaySchedule{}
		assert.NoError(t, day.Insert(lessonSlot(t, "08:00", "08:45", "math", "t1", "r1")))
		assert.NoError(t, day.Insert(lessonSlot(t, "09:00", "09:45", "physics", "t2", "r2")))

		assert.NoError(t, day.Remove(480))
		assert.Len(t, day.Slots, 1)
		assert.Equal(t, "physics", day.Slots[0].SubjectID)
	})

	t.Run("Remove Missing Slot", func(t *testing.T) {
		day := &DaySchedule{}
		err := day.Remove(480)
		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientSlotNotFound, customErr.ClientMessage)
	})
}

func TestDayScheduleSlotsFor(t *testing.T) {
	day := &DaySchedule{}
	assert.NoError(t, day.Insert(lessonSlot(t, "09:00", "09:45", "physics", "t1", "r2")))
	assert.NoError(t, day.Insert(lessonSlot(t, "08:00", "08:45", "math", "t1", "r1")))
	assert.NoError(t, day.Insert(lessonSlot(t, "10:00", "10:45", "biology", "t2", "r3")))

	slots := day.SlotsFor("t1")
	assert.Len(t, slots, 2)
	assert.Equal(t, "math", slots[0].SubjectID, "slots keep day order")
	assert.Equal(t, "physics", slots[1].SubjectID)

	assert.Empty(t, day.SlotsFor("unknown"))
}
