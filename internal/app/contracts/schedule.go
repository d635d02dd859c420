package contracts

import (
	"context"
	"time"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
)

type ScheduleRepository interface {
	Insert(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
	FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error)
	// Save is conditioned on expectedVersion; a mismatch yields StaleVersion
	// and the stored document is left untouched.
	Save(ctx context.Context, schedule *models.Schedule, expectedVersion int64) (*models.Schedule, error)
	FindActive(ctx context.Context, classID, academicYear string, semester models.Semester, asOf time.Time) (*models.Schedule, error)
	FindByTeacher(ctx context.Context, teacherID, academicYear string, semester models.Semester) ([]models.Schedule, error)
	Activate(ctx context.Context, scheduleID string) error
	Deactivate(ctx context.Context, scheduleID string) error
}

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error)
	GetScheduleByID(ctx context.Context, scheduleID string) (*responses.Schedule, error)
	FindActiveSchedule(ctx context.Context, query *requests.ActiveScheduleQuery) (*responses.Schedule, error)
	AddTimeSlot(ctx context.Context, scheduleID string, request *requests.AddTimeSlot) (*responses.Schedule, error)
	RemoveTimeSlot(ctx context.Context, scheduleID string, request *requests.RemoveTimeSlot) (*responses.Schedule, error)
	AddHoliday(ctx context.Context, scheduleID string, request *requests.AddHoliday) (*responses.Schedule, error)
	AddSpecialSchedule(ctx context.Context, scheduleID string, request *requests.AddSpecialSchedule) (*responses.Schedule, error)
	GetEffectiveWeek(ctx context.Context, scheduleID, date string) (*responses.EffectiveWeek, error)
	GetTeacherSchedule(ctx context.Context, query *requests.TeacherScheduleQuery) (*responses.TeacherSchedule, error)
	ActivateSchedule(ctx context.Context, scheduleID string) (*responses.Schedule, error)
	DeactivateSchedule(ctx context.Context, scheduleID string) (*responses.Schedule, error)
}
