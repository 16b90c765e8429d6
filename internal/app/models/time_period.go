package models

import (
	"time"
)

// TimePeriod defines an academic term window based on the 'time_periods' table,
// e.g. "T2 2025-2026".
type TimePeriod struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	StartDate time.Time `json:"-" db:"start_date"` // Date only, serialized via DTO as YYYY-MM-DD
	EndDate   time.Time `json:"-" db:"end_date"`
	Name      string    `json:"name" db:"name" example:"T2 2025-2026"`
}

// IsValid reports whether the period is still selectable: its start date
// lies strictly after the given reference date.
func (tp *TimePeriod) IsValid(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return tp.StartDate.After(today)
}
