package models

import (
	"time"
)

// Internship defines the internship model based on the 'internships' table
type Internship struct {
	ID               int64     `json:"id" db:"id" example:"1"`
	Company          string    `json:"company" db:"company" example:"Initech"`
	Position         string    `json:"position" db:"position" example:"Backend Intern"`
	Website          string    `json:"website" db:"website" example:"https://initech.example"`
	Deadline         time.Time `json:"-" db:"deadline"` // Date only, serialized via DTO as YYYY-MM-DD
	AuthorID         int64     `json:"author_id" db:"author_id"`
	TimePeriodID     int64     `json:"time_period_id" db:"time_period_id"`
	CompanyPhotoLink *string   `json:"company_photo_link,omitempty" db:"company_photo_link"`
	Flagged          bool      `json:"flagged" db:"flagged"` // Denormalized: true iff the flags table holds at least one row for this internship
	CreatedAt        time.Time `json:"-" db:"created_at"`
}
