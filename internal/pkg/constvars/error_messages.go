package constvars

// Client-facing error messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientInvalidTimeFormat             = "Time must be in 24-hour HH:MM format"
	ErrClientInvalidInterval               = "Time interval start must be before its end"
	ErrClientUnknownWeekday                = "Weekday must be one of monday through sunday"
	ErrClientInvalidBreakType              = "Break type must be one of short, lunch, long or none"
	ErrClientInvalidSemester               = "Semester must be either first or second"
	ErrClientInvalidDateRange              = "Schedule effective-from date must not be after its effective-to date"
	ErrClientTeacherConflict               = "The teacher already has a lesson overlapping this time"
	ErrClientClassroomConflict             = "The classroom is already occupied during this time"
	ErrClientScheduleNotFound              = "Schedule not found"
	ErrClientSlotNotFound                  = "No time slot found at the given weekday and start time"
	ErrClientStaleVersion                  = "The schedule was modified by someone else, please retry"
	ErrClientDataIntegrity                 = "Schedule data is in an inconsistent state, please contact an operator"
	ErrClientActiveScheduleExists          = "An active schedule already exists for this class, year and semester"
)

// Developer-facing error messages.
const (
	ErrDevValidationFailed        = "Request validation failed"
	ErrDevCannotParseJSON         = "Failed to parse JSON payload"
	ErrDevCannotMarshalJSON       = "Failed to marshal value to JSON"
	ErrDevCannotParseDate         = "Failed to parse date, expected YYYY-MM-DD"
	ErrDevInvalidTimeFormat       = "Clock time does not match HH:MM"
	ErrDevInvalidInterval         = "Interval start minute is not strictly before end minute"
	ErrDevUnknownWeekday          = "Weekday token does not map to monday..sunday"
	ErrDevInvalidBreakType        = "Break type token is not short|lunch|long|none"
	ErrDevInvalidSemester         = "Semester token is not first|second"
	ErrDevInvalidDateRange        = "effectiveFrom is after effectiveTo"
	ErrDevTeacherConflict         = "Candidate slot overlaps an existing slot of the same teacher"
	ErrDevClassroomConflict       = "Candidate slot overlaps an existing slot in the same classroom"
	ErrDevScheduleNotFound        = "Schedule document does not exist"
	ErrDevSlotNotFound            = "No slot with the requested start time on the requested weekday"
	ErrDevStaleVersion            = "Version-conditioned write matched no document, expected version is stale"
	ErrDevDataIntegrity           = "More than one active schedule matched a unique key"
	ErrDevActiveScheduleExists    = "Unique active-schedule index rejected the insert"
	ErrDevServerProcess           = "Unexpected server error"
	ErrDevServerDeadlineExceeded  = "Request processing exceeded its deadline"

	ErrDevDBFailedToFindDocument    = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument  = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument  = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBFailedToRunTransaction   = "MongoDB failed to run transaction"

	ErrDevRedisGetData       = "Redis failed to get data"
	ErrDevRedisSetData       = "Redis failed to set data"
	ErrDevRedisDeleteData    = "Redis failed to delete data"
	ErrDevRedisGetNoData     = "Redis has no data for key %s"

	ErrDevRabbitMQPublish = "RabbitMQ failed to publish message to queue %s"

	ErrDevCreateHTTPRequest = "Failed to create HTTP request"
	ErrDevSendHTTPRequest   = "Failed to send HTTP request"
	ErrDevIdentityLookup    = "Identity store lookup failed for resource %s"
	ErrDevIdentityDecode    = "Failed to decode identity store response for resource %s"
)
