package dto

import (
	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/helpers"
)

// AddInternshipRequest is the body for POST /internships/add_internship.
// The author is always the authenticated caller.
type AddInternshipRequest struct {
	Company      string `json:"company" binding:"required" example:"Initech"`
	Position     string `json:"position" binding:"required" example:"Backend Intern"`
	Website      string `json:"website" binding:"required" example:"https://initech.example"`
	Deadline     string `json:"deadline" binding:"required" example:"2027-01-01"`
	TimePeriodID int64  `json:"time_period_id" binding:"required" example:"1"`
}

// UpdateInternshipRequest is the body for PUT /internships/:id.
// It replaces the listed fields wholesale.
type UpdateInternshipRequest struct {
	Company          string  `json:"company" binding:"required"`
	Position         string  `json:"position" binding:"required"`
	Website          string  `json:"website" binding:"required"`
	Deadline         string  `json:"deadline" binding:"required"`
	TimePeriodID     int64   `json:"time_period_id" binding:"required"`
	CompanyPhotoLink *string `json:"company_photo_link,omitempty"`
}

// InternshipResponse serializes an internship with dates rendered as strings.
type InternshipResponse struct {
	ID               int64   `json:"id"`
	Company          string  `json:"company"`
	Position         string  `json:"position"`
	Website          string  `json:"website"`
	Deadline         string  `json:"deadline" example:"2027-01-01"`
	AuthorID         int64   `json:"author_id"`
	TimePeriodID     int64   `json:"time_period_id"`
	CompanyPhotoLink *string `json:"company_photo_link"`
	Flagged          bool    `json:"flagged"`
	CreatedAt        string  `json:"created_at" example:"2026-09-01 10:00:00"`
}

// NewInternshipResponse maps an internship model to its response shape.
func NewInternshipResponse(internship *models.Internship) InternshipResponse {
	return InternshipResponse{
		ID:               internship.ID,
		Company:          internship.Company,
		Position:         internship.Position,
		Website:          internship.Website,
		Deadline:         helpers.FormatDate(internship.Deadline),
		AuthorID:         internship.AuthorID,
		TimePeriodID:     internship.TimePeriodID,
		CompanyPhotoLink: internship.CompanyPhotoLink,
		Flagged:          internship.Flagged,
		CreatedAt:        helpers.FormatDateTime(internship.CreatedAt),
	}
}

// NewInternshipListResponse maps a slice of internships.
func NewInternshipListResponse(internships []*models.Internship) []InternshipResponse {
	responses := make([]InternshipResponse, 0, len(internships))
	for _, internship := range internships {
		responses = append(responses, NewInternshipResponse(internship))
	}
	return responses
}
