package domain

import (
	"errors"
	"time"
)

// PeriodType classifies a calendar exception period.
type PeriodType string

const (
	PeriodHoliday PeriodType = "holiday"
	PeriodClosed  PeriodType = "closed"
	PeriodExams   PeriodType = "exams"
)

var ErrOpeningHoursNotFound = errors.New("opening hours not found")
var ErrOpeningHoursExist = errors.New("opening hours for this weekday already exist")
var ErrInvalidWeekday = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
var ErrPeriodNotFound = errors.New("calendar period not found")
var ErrInvalidPeriodType = errors.New("period type must be holiday, closed or exams")

// ValidPeriodType reports whether t is a known calendar period type.
func ValidPeriodType(t PeriodType) bool {
	switch t {
	case PeriodHoliday, PeriodClosed, PeriodExams:
		return true
	}
	return false
}

// OpeningHours holds the regular opening times for one weekday (0 = Sunday).
type OpeningHours struct {
	Weekday   int       `json:"weekday"`
	OpenTime  string    `json:"open_time"`
	CloseTime string    `json:"close_time"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy *uint     `json:"updated_by,omitempty"`
}

// CalendarPeriod is a date range during which the regular opening hours are
// overridden (holidays, exam weeks, full closure).
type CalendarPeriod struct {
	ID          uint       `json:"id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Description string     `json:"description,omitempty"`
	Type        PeriodType `json:"type"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PeriodOpening overrides the opening times of one weekday within a period.
type PeriodOpening struct {
	Weekday   int    `json:"weekday"`
	PeriodID  uint   `json:"period_id"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}
