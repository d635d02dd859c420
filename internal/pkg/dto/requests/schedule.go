package requests

type CreateSchedule struct {
	SchoolID      string `json:"schoolId" validate:"required"`
	ClassID       string `json:"classId" validate:"required"`
	AcademicYear  string `json:"academicYear" validate:"required,academic_year"`
	Semester      string `json:"semester" validate:"required,semester"`
	EffectiveFrom string `json:"effectiveFrom" validate:"required,date_ymd"`
	EffectiveTo   string `json:"effectiveTo" validate:"required,date_ymd"`
}

type TimeSlotPayload struct {
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
	SubjectID string `json:"subjectId" validate:"required_if=IsBreak false"`
	TeacherID string `json:"teacherId" validate:"required_if=IsBreak false"`
	Classroom string `json:"classroom" validate:"required_if=IsBreak false"`
	IsBreak   bool   `json:"isBreak"`
	BreakType string `json:"breakType" validate:"omitempty,break_type"`
}

type AddTimeSlot struct {
	Weekday string `json:"weekday" validate:"required,weekday"`
	TimeSlotPayload
}

type RemoveTimeSlot struct {
	Weekday   string `json:"weekday" validate:"required,weekday"`
	StartTime string `json:"startTime" validate:"required,clock_time"`
}

type AddHoliday struct {
	Date string `json:"date" validate:"required,date_ymd"`
	Name string `json:"name" validate:"required"`
	Kind string `json:"kind" validate:"omitempty"`
}

type AddSpecialSchedule struct {
	Date   string                       `json:"date" validate:"required,date_ymd"`
	Reason string                       `json:"reason" validate:"required"`
	Days   map[string][]TimeSlotPayload `json:"days" validate:"required,dive,dive"`
}

type ActiveScheduleQuery struct {
	ClassID      string `validate:"required"`
	AcademicYear string `validate:"required,academic_year"`
	Semester     string `validate:"required,semester"`
	AsOf         string `validate:"omitempty,date_ymd"`
}

type TeacherScheduleQuery struct {
	TeacherID    string `validate:"required"`
	AcademicYear string `validate:"required,academic_year"`
	Semester     string `validate:"required,semester"`
}
