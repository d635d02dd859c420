package routers

import (
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/services/schedules"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, m *middlewares.Middlewares, c *schedules.ScheduleController) {
	router.Post("/", c.CreateSchedule)
	router.Get("/active", c.FindActiveSchedule)
	router.Get("/teachers/{teacherID}", c.GetTeacherSchedule)

	router.Route("/{scheduleID}", func(r chi.Router) {
		r.Get("/", c.GetScheduleByID)
		r.Get("/effective-week", c.GetEffectiveWeek)
		r.Post("/slots", c.AddTimeSlot)
		r.Delete("/slots", c.RemoveTimeSlot)
		r.Post("/holidays", c.AddHoliday)
		r.Post("/special-schedules", c.AddSpecialSchedule)
		r.Post("/activate", c.ActivateSchedule)
		r.Post("/deactivate", c.DeactivateSchedule)
	})
}
