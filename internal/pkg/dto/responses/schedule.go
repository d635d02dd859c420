package responses

type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	SubjectID string `json:"subjectId,omitempty"`
	TeacherID string `json:"teacherId,omitempty"`
	Classroom string `json:"classroom,omitempty"`
	IsBreak   bool   `json:"isBreak"`
	BreakType string `json:"breakType"`
}

// Week always carries all seven weekday keys, empty days included.
type Week map[string][]TimeSlot

type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
}

type SpecialSchedule struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Week   Week   `json:"week"`
}

type Schedule struct {
	ID               string            `json:"id"`
	SchoolID         string            `json:"schoolId"`
	ClassID          string            `json:"classId"`
	AcademicYear     string            `json:"academicYear"`
	Semester         string            `json:"semester"`
	EffectiveFrom    string            `json:"effectiveFrom"`
	EffectiveTo      string            `json:"effectiveTo"`
	IsActive         bool              `json:"isActive"`
	Version          int64             `json:"version"`
	Week             Week              `json:"week"`
	Holidays         []Holiday         `json:"holidays"`
	SpecialSchedules []SpecialSchedule `json:"specialSchedules"`
}

type EffectiveWeek struct {
	ScheduleID    string `json:"scheduleId"`
	Date          string `json:"date"`
	IsHoliday     bool   `json:"isHoliday"`
	HolidayName   string `json:"holidayName,omitempty"`
	SpecialReason string `json:"specialReason,omitempty"`
	Week          Week   `json:"week"`
}

type TeacherScheduleEntry struct {
	ScheduleID   string `json:"scheduleId"`
	ClassID      string `json:"classId"`
	ClassName    string `json:"className,omitempty"`
	AcademicYear string `json:"academicYear"`
	Semester     string `json:"semester"`
	Days         Week   `json:"days"`
}

type TeacherSchedule struct {
	TeacherID   string                 `json:"teacherId"`
	TeacherName string                 `json:"teacherName,omitempty"`
	Entries     []TeacherScheduleEntry `json:"entries"`
}

type IdentityRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
