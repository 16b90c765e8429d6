package services

import (
	"context"
	"fmt"
	"time"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/app/models/dto"
	"github.com/internhub/backend/internal/pkg/apperrors"
	"github.com/internhub/backend/internal/pkg/helpers"
	"github.com/internhub/backend/internal/pkg/logger"
)

// TimePeriodService handles the internship time period catalog
type TimePeriodService struct {
	timePeriodRepo TimePeriodRepository
}

// NewTimePeriodService creates a new TimePeriodService
func NewTimePeriodService(timePeriodRepo TimePeriodRepository) *TimePeriodService {
	return &TimePeriodService{
		timePeriodRepo: timePeriodRepo,
	}
}

// Add creates a new time period from its date strings
func (s *TimePeriodService) Add(ctx context.Context, req *dto.AddTimePeriodRequest) (*models.TimePeriod, error) {
	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid date format, expected YYYY-MM-DD")
	}

	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid date format, expected YYYY-MM-DD")
	}

	if endDate.Before(startDate) {
		return nil, apperrors.NewBadRequestError("End date must not precede start date")
	}

	period := &models.TimePeriod{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
	}

	id, err := s.timePeriodRepo.Create(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to create time period: %w", err)
	}
	period.ID = id

	logger.Info().Int64("time_period_id", id).Str("name", period.Name).Msg("Time period added")
	return period, nil
}

// GetValid retrieves the time periods students can still sign up for
func (s *TimePeriodService) GetValid(ctx context.Context) ([]*models.TimePeriod, error) {
	periods, err := s.timePeriodRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	valid := make([]*models.TimePeriod, 0, len(periods))
	for _, period := range periods {
		if period.IsValid(now) {
			valid = append(valid, period)
		}
	}

	return valid, nil
}

// GetAll retrieves every time period, past ones included
func (s *TimePeriodService) GetAll(ctx context.Context) ([]*models.TimePeriod, error) {
	return s.timePeriodRepo.GetAll(ctx)
}

// Delete removes a time period
func (s *TimePeriodService) Delete(ctx context.Context, id int64) error {
	if err := s.timePeriodRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("time_period_id", id).Msg("Time period deleted")
	return nil
}
