package dto

import (
	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/helpers"
)

// AddTimePeriodRequest is the body for POST /admin/add_time_period.
type AddTimePeriodRequest struct {
	StartDate string `json:"start_date" binding:"required" example:"2027-01-06"`
	EndDate   string `json:"end_date" binding:"required" example:"2027-04-10"`
	Name      string `json:"name" binding:"required" example:"T2 2026-2027"`
}

// TimePeriodResponse serializes a time period with dates rendered as strings.
type TimePeriodResponse struct {
	ID        int64  `json:"id"`
	StartDate string `json:"start_date" example:"2027-01-06"`
	EndDate   string `json:"end_date" example:"2027-04-10"`
	Name      string `json:"name"`
}

// NewTimePeriodResponse maps a time period model to its response shape.
func NewTimePeriodResponse(period *models.TimePeriod) TimePeriodResponse {
	return TimePeriodResponse{
		ID:        period.ID,
		StartDate: helpers.FormatDate(period.StartDate),
		EndDate:   helpers.FormatDate(period.EndDate),
		Name:      period.Name,
	}
}

// NewTimePeriodListResponse maps a slice of time periods.
func NewTimePeriodListResponse(periods []*models.TimePeriod) []TimePeriodResponse {
	responses := make([]TimePeriodResponse, 0, len(periods))
	for _, period := range periods {
		responses = append(responses, NewTimePeriodResponse(period))
	}
	return responses
}
