package models

import (
	"fmt"
	"sort"
	"timetable-service/internal/pkg/exceptions"
)

// DaySchedule holds one weekday's slots ordered by interval start, ties kept
// in insertion order. Mutation goes through Insert only, so the ordering and
// non-overlap invariants hold after every successful call.
type DaySchedule struct {
	Slots []TimeSlot `json:"slots" bson:"slots"`
}

func (d DaySchedule) ConflictsWithTeacher(candidate TimeSlot) bool {
	for _, slot := range d.Slots {
		if slot.TeacherID == candidate.TeacherID && slot.Interval.Overlaps(candidate.Interval) {
			return true
		}
	}
	return false
}

func (d DaySchedule) ConflictsWithClassroom(candidate TimeSlot) bool {
	for _, slot := range d.Slots {
		if slot.Classroom == candidate.Classroom && slot.Interval.Overlaps(candidate.Interval) {
			return true
		}
	}
	return false
}

// Insert rejects teacher conflicts before classroom conflicts and leaves the
// day untouched on failure.
func (d *DaySchedule) Insert(candidate TimeSlot) error {
	if candidate.TeacherID != "" && d.ConflictsWithTeacher(candidate) {
		return exceptions.ErrTeacherConflict(fmt.Errorf("teacher %s at %s-%s", candidate.TeacherID, candidate.Interval.StartClock(), candidate.Interval.EndClock()))
	}
	if candidate.Classroom != "" && d.ConflictsWithClassroom(candidate) {
		return exceptions.ErrClassroomConflict(fmt.Errorf("classroom %s at %s-%s", candidate.Classroom, candidate.Interval.StartClock(), candidate.Interval.EndClock()))
	}
	d.Slots = append(d.Slots, candidate)
	sort.SliceStable(d.Slots, func(i, j int) bool {
		return d.Slots[i].Interval.Start < d.Slots[j].Interval.Start
	})
	return nil
}

// Remove deletes the slot starting at startMinutes, preserving order.
func (d *DaySchedule) Remove(startMinutes int) error {
	for i, slot := range d.Slots {
		if slot.Interval.Start == startMinutes {
			d.Slots = append(d.Slots[:i], d.Slots[i+1:]...)
			return nil
		}
	}
	return exceptions.ErrSlotNotFound(fmt.Errorf("no slot starting at %s", formatClockTime(startMinutes)))
}

// SlotsFor filters the teacher's slots preserving day order.
func (d DaySchedule) SlotsFor(teacherID string) []TimeSlot {
	slots := make([]TimeSlot, 0)
	for _, slot := range d.Slots {
		if slot.TeacherID == teacherID {
			slots = append(slots, slot)
		}
	}
	return slots
}
