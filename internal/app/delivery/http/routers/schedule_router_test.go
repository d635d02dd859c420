package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/services/schedules"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) CreateSchedule(ctx context.Context, request *requests.CreateSchedule) (*responses.Schedule, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Schedule), args.Error(1)
}

func (m *MockScheduleUsecase) GetScheduleByID(ctx context.Context, scheduleID string) (*responses.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Schedule), args.Error(1)
}

func (m *MockScheduleUsecase) FindActiveSchedule(ctx context.Context, query *requests.ActiveScheduleQuery) (*responses.Schedule, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Schedule), args.Error(1)
}

func (m *MockScheduleUsecase) AddTimeSlot(ctx context.Context, scheduleID string, request *requests.AddTimeSlot) (*responses.Schedule, error) {
	args := m.Called(ctx, scheduleID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Schedule), args.Error(1)
}

func (m *MockScheduleUsecase) RemoveTimeSlot(ctx context.Context, scheduleID string, request *requests.RemoveTimeSlot) (*responses.Schedule, error) {
	args := m.Called(ctx, scheduleID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Schedule), args.Error(1)
}

func (m *MockScheduleUsecase) AddHoliday(ctx context.Context, scheduleID string, request *requests.AddHoliday) (*responses.Schedule, error) {
	args := m.Called(ctx, scheduleID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Schedule), args.Error(1)
}

func (m *MockScheduleUsecase) AddSpecialSchedule(ctx context.Context, scheduleID string, request *requests.AddSpecialSchedule) (*responses.Schedule, error) {
	args := m.Called(ctx, scheduleID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Schedule), args.Error(1)
}

func (m *MockScheduleUsecase) GetEffectiveWeek(ctx context.Context, scheduleID, date string) (*responses.EffectiveWeek, error) {
	args := m.Called(ctx, scheduleID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.EffectiveWeek), args.Error(1)
}

func (m *MockScheduleUsecase) GetTeacherSchedule(ctx context.Context, query *requests.TeacherScheduleQuery) (*responses.TeacherSchedule, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.TeacherSchedule), args.Error(1)
}

func (m *MockScheduleUsecase) ActivateSchedule(ctx context.Context, scheduleID string) (*responses.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Schedule), args.Error(1)
}

func (m *MockScheduleUsecase) DeactivateSchedule(ctx context.Context, scheduleID string) (*responses.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Schedule), args.Error(1)
}

func newTestRouter(mockUsecase *MockScheduleUsecase) chi.Router {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			RequestTimeoutInSecond: 5,
		},
	}

	controller := schedules.NewScheduleController(logger, mockUsecase, internalConfig)
	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachScheduleRoutes(router, middlewareInstance, controller)
	return router
}

func TestScheduleRouter_CreateSchedule(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		mockUsecase.On("CreateSchedule", mock.Anything, mock.AnythingOfType("*requests.CreateSchedule")).Return(&responses.Schedule{ID: "sched-1", Version: 1}, nil)

		requestBody := requests.CreateSchedule{
			SchoolID:      "school-1",
			ClassID:       "class-7a",
			AcademicYear:  "2025-2026",
			Semester:      "second",
			EffectiveFrom: "2026-01-12",
			EffectiveTo:   "2026-06-30",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "CreateSchedule")
	})

	t.Run("Invalid Academic Year", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		requestBody := requests.CreateSchedule{
			SchoolID:      "school-1",
			ClassID:       "class-7a",
			AcademicYear:  "25/26",
			Semester:      "second",
			EffectiveFrom: "2026-01-12",
			EffectiveTo:   "2026-06-30",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "CreateSchedule")
	})
}

func TestScheduleRouter_AddTimeSlot(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		mockUsecase.On("AddTimeSlot", mock.Anything, "sched-1", mock.AnythingOfType("*requests.AddTimeSlot")).Return(&responses.Schedule{ID: "sched-1", Version: 2}, nil)

		requestBody := requests.AddTimeSlot{
			Weekday: "monday",
			TimeSlotPayload: requests.TimeSlotPayload{
				StartTime: "08:00",
				EndTime:   "08:45",
				SubjectID: "math",
				TeacherID: "t1",
				Classroom: "r1",
			},
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/sched-1/slots", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Conflict Maps To 409", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		mockUsecase.On("AddTimeSlot", mock.Anything, "sched-1", mock.AnythingOfType("*requests.AddTimeSlot")).Return(nil, exceptions.ErrTeacherConflict(nil))

		requestBody := requests.AddTimeSlot{
			Weekday: "monday",
			TimeSlotPayload: requests.TimeSlotPayload{
				StartTime: "08:00",
				EndTime:   "08:45",
				SubjectID: "math",
				TeacherID: "t1",
				Classroom: "r1",
			},
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/sched-1/slots", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Bad Clock Time Rejected By Validation", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		requestBody := requests.AddTimeSlot{
			Weekday: "monday",
			TimeSlotPayload: requests.TimeSlotPayload{
				StartTime: "8:00",
				EndTime:   "08:45",
				SubjectID: "math",
				TeacherID: "t1",
				Classroom: "r1",
			},
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/sched-1/slots", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "AddTimeSlot")
	})
}

func TestScheduleRouter_GetScheduleByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		mockUsecase.On("GetScheduleByID", mock.Anything, "sched-1").Return(&responses.Schedule{ID: "sched-1"}, nil)

		req := httptest.NewRequest("GET", "/sched-1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not Found Maps To 404", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		mockUsecase.On("GetScheduleByID", mock.Anything, "missing").Return(nil, exceptions.ErrScheduleNotFound(nil))

		req := httptest.NewRequest("GET", "/missing", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestScheduleRouter_FindActiveSchedule(t *testing.T) {
	t.Run("Valid Query", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		mockUsecase.On("FindActiveSchedule", mock.Anything, mock.MatchedBy(func(query *requests.ActiveScheduleQuery) bool {
			return query.ClassID == "class-7a" && query.Semester == "second"
		})).Return(&responses.Schedule{ID: "sched-1"}, nil)

		req := httptest.NewRequest("GET", "/active?classId=class-7a&academicYear=2025-2026&semester=second", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Missing Query Parameters", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/active", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "FindActiveSchedule")
	})
}

func TestScheduleRouter_Lifecycle(t *testing.T) {
	t.Run("Activate", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		mockUsecase.On("ActivateSchedule", mock.Anything, "sched-1").Return(&responses.Schedule{ID: "sched-1", IsActive: true}, nil)

		req := httptest.NewRequest("POST", "/sched-1/activate", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Stale Version Maps To 409", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		router := newTestRouter(mockUsecase)

		mockUsecase.On("RemoveTimeSlot", mock.Anything, "sched-1", mock.AnythingOfType("*requests.RemoveTimeSlot")).Return(nil, exceptions.ErrStaleVersion(nil))

		requestBody := requests.RemoveTimeSlot{Weekday: "monday", StartTime: "08:00"}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("DELETE", "/sched-1/slots", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
