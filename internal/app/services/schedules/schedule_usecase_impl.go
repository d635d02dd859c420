package schedules

import (
	"context"
	"fmt"
	"time"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepository contracts.ScheduleRepository
	RedisRepository    contracts.RedisRepository
	IdentityClient     contracts.IdentityClient
	EventPublisher     contracts.ScheduleEventPublisher
	Log                *zap.Logger
	cacheTTL           time.Duration
	saveRetryAttempts  int
}

func NewScheduleUsecase(
	scheduleRepository contracts.ScheduleRepository,
	redisRepository contracts.RedisRepository,
	identityClient contracts.IdentityClient,
	eventPublisher contracts.ScheduleEventPublisher,
	logger *zap.Logger,
	cacheTTL time.Duration,
	saveRetryAttempts int,
) contracts.ScheduleUsecase {
	if saveRetryAttempts < 1 {
		saveRetryAttempts = 1
	}
	return &scheduleUsecase{
		ScheduleRepository: scheduleRepository,
		RedisRepository:    redisRepository,
		IdentityClient:     identityClient,
		EventPublisher:     eventPublisher,
		Log:                logger,
		cacheTTL:           cacheTTL,
		saveRetryAttempts:  saveRetryAttempts,
	}
}

func (uc *scheduleUsecase) CreateSchedule(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CreateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClassIDKey, request.ClassID),
		zap.String(constvars.LoggingAcademicYearKey, request.AcademicYear),
		zap.String(constvars.LoggingSemesterKey, request.Semester),
	)

	semester, err := models.ParseSemester(request.Semester)
	if err != nil {
		return nil, err
	}
	effectiveFrom, err := time.Parse(constvars.DateLayoutYMD, request.EffectiveFrom)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	effectiveTo, err := time.Parse(constvars.DateLayoutYMD, request.EffectiveTo)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	schedule, err := models.NewSchedule(request.SchoolID, request.ClassID, request.AcademicYear, semester, effectiveFrom, effectiveTo)
	if err != nil {
		return nil, err
	}
	schedule.ID = utils.GenerateScheduleID()

	schedule, err = uc.ScheduleRepository.Insert(ctx, schedule)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateSchedule error inserting schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.invalidateActiveCache(ctx, schedule)
	uc.publishEvent(ctx, contracts.ScheduleEventCreated, schedule)

	uc.Log.Info("scheduleUsecase.CreateSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
	)
	return schedule.ConvertIntoResponse(), nil
}

func (uc *scheduleUsecase) GetScheduleByID(ctx context.Context, scheduleID string) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetScheduleByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}
	return schedule.ConvertIntoResponse(), nil
}

func (uc *scheduleUsecase) FindActiveSchedule(ctx context.Context, query *requests.ActiveScheduleQuery) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.FindActiveSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClassIDKey, query.ClassID),
		zap.String(constvars.LoggingAcademicYearKey, query.AcademicYear),
		zap.String(constvars.LoggingSemesterKey, query.Semester),
	)

	semester, err := models.ParseSemester(query.Semester)
	if err != nil {
		return nil, err
	}
	asOf := time.Now()
	if query.AsOf != "" {
		asOf, err = time.Parse(constvars.DateLayoutYMD, query.AsOf)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
	}

	cacheKey := activeCacheKey(query.ClassID, query.AcademicYear, semester)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Error("scheduleUsecase.FindActiveSchedule error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if cached != "" {
		var schedule models.Schedule
		if err := json.Unmarshal([]byte(cached), &schedule); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		if schedule.IsValidOn(asOf) {
			uc.Log.Info("scheduleUsecase.FindActiveSchedule cache hit",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
			)
			return schedule.ConvertIntoResponse(), nil
		}
	}

	schedule, err := uc.ScheduleRepository.FindActive(ctx, query.ClassID, query.AcademicYear, semester, asOf)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}

	err = uc.RedisRepository.Set(ctx, cacheKey, schedule, uc.cacheTTL)
	if err != nil {
		uc.Log.Error("scheduleUsecase.FindActiveSchedule error caching schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return schedule.ConvertIntoResponse(), nil
}

func (uc *scheduleUsecase) AddTimeSlot(ctx context.Context, scheduleID string, request *requests.AddTimeSlot) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.AddTimeSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		zap.String(constvars.LoggingWeekdayKey, request.Weekday),
		zap.String(constvars.LoggingTeacherIDKey, request.TeacherID),
	)

	candidate, err := buildTimeSlot(request.TimeSlotPayload)
	if err != nil {
		return nil, err
	}

	schedule, err := uc.mutateAndSave(ctx, scheduleID, func(s *models.Schedule) error {
		return s.AddTimeSlot(request.Weekday, candidate)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateActiveCache(ctx, schedule)
	uc.publishEvent(ctx, contracts.ScheduleEventUpdated, schedule)
	return schedule.ConvertIntoResponse(), nil
}

func (uc *scheduleUsecase) RemoveTimeSlot(ctx context.Context, scheduleID string, request *requests.RemoveTimeSlot) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.RemoveTimeSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		zap.String(constvars.LoggingWeekdayKey, request.Weekday),
	)

	startMinutes, err := models.ParseClockTime(request.StartTime)
	if err != nil {
		return nil, err
	}

	schedule, err := uc.mutateAndSave(ctx, scheduleID, func(s *models.Schedule) error {
		return s.RemoveTimeSlot(request.Weekday, startMinutes)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateActiveCache(ctx, schedule)
	uc.publishEvent(ctx, contracts.ScheduleEventUpdated, schedule)
	return schedule.ConvertIntoResponse(), nil
}

func (uc *scheduleUsecase) AddHoliday(ctx context.Context, scheduleID string, request *requests.AddHoliday) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.AddHoliday called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	date, err := time.Parse(constvars.DateLayoutYMD, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	schedule, err := uc.mutateAndSave(ctx, scheduleID, func(s *models.Schedule) error {
		s.AddHoliday(models.Holiday{Date: date, Name: request.Name, Kind: request.Kind})
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateActiveCache(ctx, schedule)
	uc.publishEvent(ctx, contracts.ScheduleEventUpdated, schedule)
	return schedule.ConvertIntoResponse(), nil
}

func (uc *scheduleUsecase) AddSpecialSchedule(ctx context.Context, scheduleID string, request *requests.AddSpecialSchedule) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.AddSpecialSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	date, err := time.Parse(constvars.DateLayoutYMD, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	overrideWeek, err := buildOverrideWeek(request.Days)
	if err != nil {
		return nil, err
	}

	schedule, err := uc.mutateAndSave(ctx, scheduleID, func(s *models.Schedule) error {
		s.AddSpecialSchedule(models.SpecialSchedule{Date: date, Reason: request.Reason, OverrideWeek: overrideWeek})
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateActiveCache(ctx, schedule)
	uc.publishEvent(ctx, contracts.ScheduleEventUpdated, schedule)
	return schedule.ConvertIntoResponse(), nil
}

func (uc *scheduleUsecase) GetEffectiveWeek(ctx context.Context, scheduleID, date string) (*responses.EffectiveWeek, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetEffectiveWeek called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
		zap.String(constvars.LoggingDateKey, date),
	)

	parsedDate, err := time.Parse(constvars.DateLayoutYMD, date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}

	response := &responses.EffectiveWeek{
		ScheduleID: schedule.ID,
		Date:       parsedDate.Format(constvars.DateLayoutYMD),
		Week:       schedule.EffectiveOn(parsedDate).ConvertIntoResponse(),
	}
	if holiday := schedule.HolidayOn(parsedDate); holiday != nil {
		response.IsHoliday = true
		response.HolidayName = holiday.Name
	} else if special := schedule.SpecialScheduleOn(parsedDate); special != nil {
		response.SpecialReason = special.Reason
	}
	return response, nil
}

func (uc *scheduleUsecase) GetTeacherSchedule(ctx context.Context, query *requests.TeacherScheduleQuery) (*responses.TeacherSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetTeacherSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTeacherIDKey, query.TeacherID),
		zap.String(constvars.LoggingAcademicYearKey, query.AcademicYear),
		zap.String(constvars.LoggingSemesterKey, query.Semester),
	)

	semester, err := models.ParseSemester(query.Semester)
	if err != nil {
		return nil, err
	}

	schedules, err := uc.ScheduleRepository.FindByTeacher(ctx, query.TeacherID, query.AcademicYear, semester)
	if err != nil {
		return nil, err
	}
	uc.Log.Info("scheduleUsecase.GetTeacherSchedule fetched schedules",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSchedulesCountKey, len(schedules)),
	)

	response := &responses.TeacherSchedule{
		TeacherID: query.TeacherID,
		Entries:   make([]responses.TeacherScheduleEntry, 0, len(schedules)),
	}
	response.TeacherName = uc.resolveName(ctx, requestID, func() (*responses.IdentityRecord, error) {
		return uc.IdentityClient.FindTeacherByID(ctx, query.TeacherID)
	})

	for i := range schedules {
		schedule := &schedules[i]
		if !schedule.Week.HasTeacher(query.TeacherID) {
			continue
		}
		entry := responses.TeacherScheduleEntry{
			ScheduleID:   schedule.ID,
			ClassID:      schedule.ClassID,
			AcademicYear: schedule.AcademicYear,
			Semester:     string(schedule.Semester),
			Days:         convertTeacherDays(schedule.Week.TeacherSchedule(query.TeacherID)),
		}
		entry.ClassName = uc.resolveName(ctx, requestID, func() (*responses.IdentityRecord, error) {
			return uc.IdentityClient.FindClassByID(ctx, schedule.ClassID)
		})
		response.Entries = append(response.Entries, entry)
	}
	return response, nil
}

func (uc *scheduleUsecase) ActivateSchedule(ctx context.Context, scheduleID string) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.ActivateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	err := uc.ScheduleRepository.Activate(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}

	uc.invalidateActiveCache(ctx, schedule)
	uc.publishEvent(ctx, contracts.ScheduleEventActivated, schedule)
	return schedule.ConvertIntoResponse(), nil
}

func (uc *scheduleUsecase) DeactivateSchedule(ctx context.Context, scheduleID string) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.DeactivateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	err := uc.ScheduleRepository.Deactivate(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}

	uc.invalidateActiveCache(ctx, schedule)
	uc.publishEvent(ctx, contracts.ScheduleEventDeactivated, schedule)
	return schedule.ConvertIntoResponse(), nil
}

// mutateAndSave re-reads, re-applies and re-saves on StaleVersion, so two
// concurrent editors cannot both slip a conflicting slot past the check.
// Conflict errors from mutate abort immediately; only stale writes retry.
func (uc *scheduleUsecase) mutateAndSave(ctx context.Context, scheduleID string, mutate func(*models.Schedule) error) (*models.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var lastErr error
	for attempt := 1; attempt <= uc.saveRetryAttempts; attempt++ {
		schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
		if err != nil {
			return nil, err
		}
		if schedule == nil {
			return nil, exceptions.ErrScheduleNotFound(nil)
		}

		if err := mutate(schedule); err != nil {
			return nil, err
		}

		saved, err := uc.ScheduleRepository.Save(ctx, schedule, schedule.Version)
		if err != nil {
			if exceptions.IsStaleVersion(err) {
				uc.Log.Warn("scheduleUsecase.mutateAndSave stale version, retrying",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingScheduleIDKey, scheduleID),
					zap.Int(constvars.LoggingAttemptKey, attempt),
				)
				lastErr = err
				continue
			}
			return nil, err
		}
		return saved, nil
	}
	return nil, lastErr
}

func (uc *scheduleUsecase) invalidateActiveCache(ctx context.Context, schedule *models.Schedule) {
	cacheKey := activeCacheKey(schedule.ClassID, schedule.AcademicYear, schedule.Semester)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		uc.Log.Error("scheduleUsecase.invalidateActiveCache error deleting cache entry",
			zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
			zap.Error(err),
		)
	}
}

// publishEvent is best effort: a committed write is already durable, so a
// publish failure is logged and surfaced to consumers by the next event.
func (uc *scheduleUsecase) publishEvent(ctx context.Context, action string, schedule *models.Schedule) {
	event := contracts.ScheduleEvent{
		Action:       action,
		ScheduleID:   schedule.ID,
		ClassID:      schedule.ClassID,
		AcademicYear: schedule.AcademicYear,
		Semester:     string(schedule.Semester),
		Version:      schedule.Version,
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("scheduleUsecase.publishEvent error publishing event",
			zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
			zap.Error(err),
		)
	}
}

func (uc *scheduleUsecase) resolveName(ctx context.Context, requestID string, lookup func() (*responses.IdentityRecord, error)) string {
	record, err := lookup()
	if err != nil {
		uc.Log.Warn("scheduleUsecase.resolveName identity lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return ""
	}
	if record == nil {
		return ""
	}
	return record.Name
}

func activeCacheKey(classID, academicYear string, semester models.Semester) string {
	return fmt.Sprintf(constvars.RedisKeyActiveScheduleFormat, classID, academicYear, semester)
}

func buildTimeSlot(payload requests.TimeSlotPayload) (models.TimeSlot, error) {
	interval, err := models.NewTimeIntervalFromClock(payload.StartTime, payload.EndTime)
	if err != nil {
		return models.TimeSlot{}, err
	}
	breakType, err := models.ParseBreakType(payload.BreakType)
	if err != nil {
		return models.TimeSlot{}, err
	}
	return models.NewTimeSlot(interval, payload.SubjectID, payload.TeacherID, payload.Classroom, payload.IsBreak, breakType), nil
}

// buildOverrideWeek assembles a special day's replacement week; each override
// day is internally conflict-checked, but overrides are deliberately not
// validated against the base week.
func buildOverrideWeek(days map[string][]requests.TimeSlotPayload) (models.WeekSchedule, error) {
	week := models.NewWeekSchedule()
	for weekdayToken, payloads := range days {
		for _, payload := range payloads {
			slot, err := buildTimeSlot(payload)
			if err != nil {
				return models.WeekSchedule{}, err
			}
			if err := week.AddTimeSlot(weekdayToken, slot); err != nil {
				return models.WeekSchedule{}, err
			}
		}
	}
	return week, nil
}

func convertTeacherDays(days map[models.Weekday][]models.TimeSlot) responses.Week {
	week := make(responses.Week, len(days))
	for weekday, slots := range days {
		converted := make([]responses.TimeSlot, len(slots))
		for i, slot := range slots {
			converted[i] = slot.ConvertIntoResponse()
		}
		week[string(weekday)] = converted
	}
	return week
}
