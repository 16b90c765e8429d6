package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/apperrors"
	"github.com/internhub/backend/internal/pkg/logger"
)

// FlagService handles flagging of internship listings. The flags table is
// the source of truth; internships.flagged is kept in step inside the same
// transaction as every flag mutation.
type FlagService struct {
	internshipRepo InternshipRepository
	flagRepo       FlagRepository
	tx             TxRunner
}

// NewFlagService creates a new FlagService
func NewFlagService(internshipRepo InternshipRepository, flagRepo FlagRepository, tx TxRunner) *FlagService {
	return &FlagService{
		internshipRepo: internshipRepo,
		flagRepo:       flagRepo,
		tx:             tx,
	}
}

// Flag records that a user flagged an internship. Flagging an internship
// the user already flagged is a no-op.
func (s *FlagService) Flag(ctx context.Context, userID, internshipID int64, reason *string) error {
	if _, err := s.internshipRepo.GetByID(ctx, internshipID); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		created, err := s.flagRepo.CreateTx(ctx, tx, &models.Flag{
			UserID:       userID,
			InternshipID: internshipID,
			Reason:       reason,
		})
		if err != nil {
			return err
		}
		if !created {
			// Already flagged by this user
			return nil
		}

		return s.internshipRepo.SetFlaggedTx(ctx, tx, internshipID, true)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("internship_id", internshipID).Int64("user_id", userID).Msg("Internship flagged")
	return nil
}

// Unflag removes the caller's flag. The flagged marker is lowered only when
// the last flag disappears.
func (s *FlagService) Unflag(ctx context.Context, userID, internshipID int64) error {
	if _, err := s.internshipRepo.GetByID(ctx, internshipID); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		deleted, err := s.flagRepo.DeleteTx(ctx, tx, userID, internshipID)
		if err != nil {
			return err
		}
		if !deleted {
			return apperrors.ErrFlagNotFound
		}

		remaining, err := s.flagRepo.CountTx(ctx, tx, internshipID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return s.internshipRepo.SetFlaggedTx(ctx, tx, internshipID, false)
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("internship_id", internshipID).Int64("user_id", userID).Msg("Internship unflagged")
	return nil
}

// ClearFlags removes every flag on an internship and lowers the marker.
// Admin only; authorization happens at the transport layer.
func (s *FlagService) ClearFlags(ctx context.Context, internshipID int64) error {
	if _, err := s.internshipRepo.GetByID(ctx, internshipID); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.flagRepo.DeleteAllTx(ctx, tx, internshipID); err != nil {
			return err
		}
		return s.internshipRepo.SetFlaggedTx(ctx, tx, internshipID, false)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("internship_id", internshipID).Msg("Flags cleared")
	return nil
}
