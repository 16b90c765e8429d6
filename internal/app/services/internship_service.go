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

// InternshipService handles internship listing operations
type InternshipService struct {
	internshipRepo InternshipRepository
	timePeriodRepo TimePeriodRepository
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(internshipRepo InternshipRepository, timePeriodRepo TimePeriodRepository) *InternshipService {
	return &InternshipService{
		internshipRepo: internshipRepo,
		timePeriodRepo: timePeriodRepo,
	}
}

// parseDeadline parses a YYYY-MM-DD deadline string.
func (s *InternshipService) parseDeadline(deadline string) (time.Time, error) {
	parsed, err := helpers.ParseDate(deadline)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("Invalid date format, expected YYYY-MM-DD")
	}
	return parsed, nil
}

// Create adds a new internship listing authored by the given user. The
// deadline must lie strictly in the future at creation.
func (s *InternshipService) Create(ctx context.Context, authorID int64, req *dto.AddInternshipRequest) (*models.Internship, error) {
	deadline, err := s.parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}
	if !deadline.After(helpers.Today()) {
		return nil, apperrors.ErrDeadlineInPast
	}

	if _, err := s.timePeriodRepo.GetByID(ctx, req.TimePeriodID); err != nil {
		return nil, err
	}

	internship := &models.Internship{
		Company:      req.Company,
		Position:     req.Position,
		Website:      req.Website,
		Deadline:     deadline,
		AuthorID:     authorID,
		TimePeriodID: req.TimePeriodID,
	}

	id, err := s.internshipRepo.Create(ctx, internship)
	if err != nil {
		return nil, fmt.Errorf("failed to create internship: %w", err)
	}
	internship.ID = id

	logger.Info().Int64("internship_id", id).Int64("author_id", authorID).Msg("Internship created")
	return internship, nil
}

// GetByID retrieves a single internship
func (s *InternshipService) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	return s.internshipRepo.GetByID(ctx, id)
}

// GetAll retrieves every internship, closest deadline first
func (s *InternshipService) GetAll(ctx context.Context) ([]*models.Internship, error) {
	return s.internshipRepo.GetAll(ctx)
}

// GetByAuthorID retrieves the internships posted by a user
func (s *InternshipService) GetByAuthorID(ctx context.Context, authorID int64) ([]*models.Internship, error) {
	return s.internshipRepo.GetByAuthorID(ctx, authorID)
}

// Update replaces the editable fields of an existing internship. The caller
// must already be authorized for the change. Unlike Create, the deadline is
// not checked against today; an expired listing can still be corrected.
func (s *InternshipService) Update(ctx context.Context, internship *models.Internship, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
	deadline, err := s.parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	if req.TimePeriodID != internship.TimePeriodID {
		if _, err := s.timePeriodRepo.GetByID(ctx, req.TimePeriodID); err != nil {
			return nil, err
		}
	}

	internship.Company = req.Company
	internship.Position = req.Position
	internship.Website = req.Website
	internship.Deadline = deadline
	internship.TimePeriodID = req.TimePeriodID

	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		return nil, fmt.Errorf("failed to update internship: %w", err)
	}

	logger.Info().Int64("internship_id", internship.ID).Msg("Internship updated")
	return internship, nil
}

// Delete removes an internship listing
func (s *InternshipService) Delete(ctx context.Context, id int64) error {
	if err := s.internshipRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("internship_id", id).Msg("Internship deleted")
	return nil
}
