package contracts

import "context"

const (
	ScheduleEventCreated     = "schedule.created"
	ScheduleEventUpdated     = "schedule.updated"
	ScheduleEventActivated   = "schedule.activated"
	ScheduleEventDeactivated = "schedule.deactivated"
)

type ScheduleEvent struct {
	Action       string `json:"action"`
	ScheduleID   string `json:"scheduleId"`
	ClassID      string `json:"classId"`
	AcademicYear string `json:"academicYear"`
	Semester     string `json:"semester"`
	Version      int64  `json:"version"`
}

type ScheduleEventPublisher interface {
	Publish(ctx context.Context, event ScheduleEvent) error
}
