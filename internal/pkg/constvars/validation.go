package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"required_if":   "is required",
	"min":           "must be at least %s",
	"max":           "must be at most %s",
	"oneof":         "must be one of %s",
	"clock_time":    "must be a 24-hour HH:MM time",
	"weekday":       "must be an English weekday name, monday through sunday",
	"semester":      "must be either first or second",
	"academic_year": "must look like 2024-2025",
	"date_ymd":      "must be a YYYY-MM-DD date",
	"break_type":    "must be one of short, lunch, long or none",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
