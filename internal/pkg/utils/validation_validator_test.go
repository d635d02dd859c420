package utils

import (
	"testing"
	"timetable-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func validCreateSchedule() *requests.CreateSchedule {
	return &requests.CreateSchedule{
		SchoolID:      "school-1",
		ClassID:       "class-7a",
		AcademicYear:  "2025-2026",
		Semester:      "second",
		EffectiveFrom: "2026-01-12",
		EffectiveTo:   "2026-06-30",
	}
}

func TestValidateCreateSchedule(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validCreateSchedule()))
	})

	t.Run("Bad Academic Year", func(t *testing.T) {
		request := validCreateSchedule()
		request.AcademicYear = "2025/26"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Bad Semester", func(t *testing.T) {
		request := validCreateSchedule()
		request.Semester = "summer"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Bad Date", func(t *testing.T) {
		request := validCreateSchedule()
		request.EffectiveFrom = "12-01-2026"
		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateAddTimeSlot(t *testing.T) {
	validSlot := func() *requests.AddTimeSlot {
		return &requests.AddTimeSlot{
			Weekday: "monday",
			TimeSlotPayload: requests.TimeSlotPayload{
				StartTime: "08:00",
				EndTime:   "08:45",
				SubjectID: "math",
				TeacherID: "t1",
				Classroom: "r1",
			},
		}
	}

	t.Run("Valid Lesson", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validSlot()))
	})

	t.Run("Valid Break Without References", func(t *testing.T) {
		request := &requests.AddTimeSlot{
			Weekday: "monday",
			TimeSlotPayload: requests.TimeSlotPayload{
				StartTime: "10:00",
				EndTime:   "10:15",
				IsBreak:   true,
				BreakType: "short",
			},
		}
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Lesson Missing Teacher", func(t *testing.T) {
		request := validSlot()
		request.TeacherID = ""
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Bad Clock Time", func(t *testing.T) {
		request := validSlot()
		request.StartTime = "24:00"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Single Digit Hour Rejected", func(t *testing.T) {
		request := validSlot()
		request.StartTime = "8:00"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Bad Weekday", func(t *testing.T) {
		request := validSlot()
		request.Weekday = "funday"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Bad Break Type", func(t *testing.T) {
		request := validSlot()
		request.IsBreak = true
		request.BreakType = "siesta"
		assert.Error(t, ValidateStruct(request))
	})
}
