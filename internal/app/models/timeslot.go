package models

import (
	"fmt"
	"timetable-service/internal/pkg/exceptions"
)

type BreakType string

const (
	BreakTypeNone  BreakType = "none"
	BreakTypeShort BreakType = "short"
	BreakTypeLunch BreakType = "lunch"
	BreakTypeLong  BreakType = "long"
)

func ParseBreakType(token string) (BreakType, error) {
	switch BreakType(token) {
	case BreakTypeNone, "":
		return BreakTypeNone, nil
	case BreakTypeShort:
		return BreakTypeShort, nil
	case BreakTypeLunch:
		return BreakTypeLunch, nil
	case BreakTypeLong:
		return BreakTypeLong, nil
	}
	return "", exceptions.ErrInvalidBreakType(fmt.Errorf("got %q", token))
}

// TimeSlot is one occupation of a classroom by a teacher and subject within
// a time interval. SubjectID and TeacherID are opaque references resolved by
// the identity store; Classroom is a free-text label, not a foreign key.
type TimeSlot struct {
	Interval  TimeInterval `json:"interval" bson:"interval"`
	SubjectID string       `json:"subjectId" bson:"subjectId"`
	TeacherID string       `json:"teacherId" bson:"teacherId"`
	Classroom string       `json:"classroom" bson:"classroom"`
	IsBreak   bool         `json:"isBreak" bson:"isBreak"`
	BreakType BreakType    `json:"breakType" bson:"breakType"`
}

// NewTimeSlot normalizes the break marker: a non-break slot always carries
// BreakTypeNone.
func NewTimeSlot(interval TimeInterval, subjectID, teacherID, classroom string, isBreak bool, breakType BreakType) TimeSlot {
	if !isBreak {
		breakType = BreakTypeNone
	} else if breakType == "" {
		breakType = BreakTypeShort
	}
	return TimeSlot{
		Interval:  interval,
		SubjectID: subjectID,
		TeacherID: teacherID,
		Classroom: classroom,
		IsBreak:   isBreak,
		BreakType: breakType,
	}
}
