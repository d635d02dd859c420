package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
)

const (
	MongoCollectionSchedules = "schedules"
)

const (
	RedisKeyActiveScheduleFormat = "schedules:active:%s:%s:%s"
)

const (
	// Identity store resource paths, relative to the identity base URL.
	ResourceTeacher = "/teachers"
	ResourceSubject = "/subjects"
	ResourceClass   = "/classes"
	ResourceSchool  = "/schools"
)

const (
	DateLayoutYMD = "2006-01-02"

	ResponseUnknown = "unknown"
)

const (
	ScheduleCreatedSuccess        = "Schedule created successfully"
	ScheduleGetSuccess            = "Schedule retrieved successfully"
	ScheduleSlotAddedSuccess      = "Time slot added successfully"
	ScheduleSlotRemovedSuccess    = "Time slot removed successfully"
	ScheduleHolidayAddedSuccess   = "Holiday added successfully"
	ScheduleSpecialAddedSuccess   = "Special schedule added successfully"
	ScheduleActivatedSuccess      = "Schedule activated successfully"
	ScheduleDeactivatedSuccess    = "Schedule deactivated successfully"
	ScheduleEffectiveGetSuccess   = "Effective week retrieved successfully"
	TeacherScheduleGetSuccess     = "Teacher schedule retrieved successfully"
	ActiveScheduleGetSuccess      = "Active schedule retrieved successfully"
)
