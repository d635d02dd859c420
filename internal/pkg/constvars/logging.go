package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingScheduleIDKey    = "schedule_id"
	LoggingClassIDKey       = "class_id"
	LoggingTeacherIDKey     = "teacher_id"
	LoggingAcademicYearKey  = "academic_year"
	LoggingSemesterKey      = "semester"
	LoggingWeekdayKey       = "weekday"
	LoggingVersionKey       = "version"
	LoggingAttemptKey       = "attempt"
	LoggingDateKey          = "date"
	LoggingSchedulesCountKey = "schedules_count"
)
