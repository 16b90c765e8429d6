package services

import (
	"context"
	"fmt"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/logger"
)

// FavoriteService handles the personal favorite lists
type FavoriteService struct {
	internshipRepo InternshipRepository
	favoriteRepo   FavoriteRepository
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(internshipRepo InternshipRepository, favoriteRepo FavoriteRepository) *FavoriteService {
	return &FavoriteService{
		internshipRepo: internshipRepo,
		favoriteRepo:   favoriteRepo,
	}
}

// Favorite adds an internship to the user's favorites. Idempotent.
func (s *FavoriteService) Favorite(ctx context.Context, userID, internshipID int64) error {
	if _, err := s.internshipRepo.GetByID(ctx, internshipID); err != nil {
		return err
	}

	if err := s.favoriteRepo.Create(ctx, userID, internshipID); err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	logger.Info().Int64("internship_id", internshipID).Int64("user_id", userID).Msg("Internship favorited")
	return nil
}

// Unfavorite removes an internship from the user's favorites. Removing one
// that was never favorited is a no-op.
func (s *FavoriteService) Unfavorite(ctx context.Context, userID, internshipID int64) error {
	if _, err := s.internshipRepo.GetByID(ctx, internshipID); err != nil {
		return err
	}

	if _, err := s.favoriteRepo.Delete(ctx, userID, internshipID); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}

// GetFavorites retrieves the internships the user favorited
func (s *FavoriteService) GetFavorites(ctx context.Context, userID int64) ([]*models.Internship, error) {
	return s.favoriteRepo.GetInternshipsByUserID(ctx, userID)
}
