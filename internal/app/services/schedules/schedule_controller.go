package schedules

import (
	"context"
	"net/http"
	"time"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
	InternalConfig  *config.InternalConfig
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase, internalConfig *config.InternalConfig) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
		InternalConfig:  internalConfig,
	}
}

func (c *ScheduleController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(c.InternalConfig.App.RequestTimeoutInSecond) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}

func (c *ScheduleController) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.requestContext(r)
	defer cancel()

	request := new(requests.CreateSchedule)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.ScheduleUsecase.CreateSchedule(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ScheduleCreatedSuccess, response)
}

func (c *ScheduleController) GetScheduleByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.requestContext(r)
	defer cancel()

	scheduleID := chi.URLParam(r, "scheduleID")

	response, err := c.ScheduleUsecase.GetScheduleByID(ctx, scheduleID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleGetSuccess, response)
}

func (c *ScheduleController) FindActiveSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.requestContext(r)
	defer cancel()

	query := &requests.ActiveScheduleQuery{
		ClassID:      r.URL.Query().Get("classId"),
		AcademicYear: r.URL.Query().Get("academicYear"),
		Semester:     r.URL.Query().Get("semester"),
		AsOf:         r.URL.Query().Get("asOf"),
	}
	if err := utils.ValidateStruct(query); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.ScheduleUsecase.FindActiveSchedule(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ActiveScheduleGetSuccess, response)
}

func (c *ScheduleController) AddTimeSlot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.requestContext(r)
	defer cancel()

	scheduleID := chi.URLParam(r, "scheduleID")

	request := new(requests.AddTimeSlot)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.ScheduleUsecase.AddTimeSlot(ctx, scheduleID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleSlotAddedSuccess, response)
}

func (c *ScheduleController) RemoveTimeSlot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.requestContext(r)
	defer cancel()

	scheduleID := chi.URLParam(r, "scheduleID")

	request := new(requests.RemoveTimeSlot)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.ScheduleUsecase.RemoveTimeSlot(ctx, scheduleID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleSlotRemovedSuccess, response)
}

func (c *ScheduleController) AddHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.requestContext(r)
	defer cancel()

	scheduleID := chi.URLParam(r, "scheduleID")

	request := new(requests.AddHoliday)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.ScheduleUsecase.AddHoliday(ctx, scheduleID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleHolidayAddedSuccess, response)
}

func (c *ScheduleController) AddSpecialSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.requestContext(r)
	defer cancel()

	scheduleID := chi.URLParam(r, "scheduleID")

	request := new(requests.AddSpecialSchedule)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.ScheduleUsecase.AddSpecialSchedule(ctx, scheduleID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleSpecialAddedSuccess, response)
}

func (c *ScheduleController) GetEffectiveWeek(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.requestContext(r)
	defer cancel()

	scheduleID := chi.URLParam(r, "scheduleID")
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(constvars.DateLayoutYMD)
	}

	response, err := c.ScheduleUsecase.GetEffectiveWeek(ctx, scheduleID, date)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleEffectiveGetSuccess, response)
}

func (c *ScheduleController) GetTeacherSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.requestContext(r)
	defer cancel()

	query := &requests.TeacherScheduleQuery{
		TeacherID:    chi.URLParam(r, "teacherID"),
		AcademicYear: r.URL.Query().Get("academicYear"),
		Semester:     r.URL.Query().Get("semester"),
	}
	if err := utils.ValidateStruct(query); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.ScheduleUsecase.GetTeacherSchedule(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TeacherScheduleGetSuccess, response)
}

func (c *ScheduleController) ActivateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.requestContext(r)
	defer cancel()

	scheduleID := chi.URLParam(r, "scheduleID")

	response, err := c.ScheduleUsecase.ActivateSchedule(ctx, scheduleID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleActivatedSuccess, response)
}

func (c *ScheduleController) DeactivateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := c.requestContext(r)
	defer cancel()

	scheduleID := chi.URLParam(r, "scheduleID")

	response, err := c.ScheduleUsecase.DeactivateSchedule(ctx, scheduleID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleDeactivatedSuccess, response)
}
