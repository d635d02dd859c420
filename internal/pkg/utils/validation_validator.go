package utils

import (
	"regexp"
	"time"
	"timetable-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	clockTimeRegex    = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	academicYearRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{4}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterValidation("semester", validateSemester)
	validate.RegisterValidation("academic_year", validateAcademicYear)
	validate.RegisterValidation("date_ymd", validateDateYMD)
	validate.RegisterValidation("break_type", validateBreakType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateClockTime(fl validator.FieldLevel) bool {
	return clockTimeRegex.MatchString(fl.Field().String())
}

func validateWeekday(fl validator.FieldLevel) bool {
	switch normalizeToken(fl.Field().String()) {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	}
	return false
}

func validateSemester(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "first" || value == "second"
}

func validateAcademicYear(fl validator.FieldLevel) bool {
	return academicYearRegex.MatchString(fl.Field().String())
}

func validateDateYMD(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayoutYMD, fl.Field().String())
	return err == nil
}

func validateBreakType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "short", "lunch", "long", "none":
		return true
	}
	return false
}
