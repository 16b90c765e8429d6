package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/backend/internal/app/models"
)

// FlagRepository handles flag database operations. The mutating methods run
// inside a caller-provided transaction so the flags table and the
// internships.flagged marker always change together.
type FlagRepository struct {
	db *pgxpool.Pool
}

// NewFlagRepository creates a new FlagRepository
func NewFlagRepository(db *pgxpool.Pool) *FlagRepository {
	return &FlagRepository{
		db: db,
	}
}

// CreateTx inserts a flag. Returns false when the user already flagged the
// internship; flagging is idempotent.
func (r *FlagRepository) CreateTx(ctx context.Context, tx pgx.Tx, flag *models.Flag) (bool, error) {
	tag, err := tx.Exec(ctx, `
		INSERT INTO flags (user_id, internship_id, reason)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, internship_id) DO NOTHING`,
		flag.UserID, flag.InternshipID, flag.Reason)

	if err != nil {
		return false, fmt.Errorf("error creating flag: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteTx removes the flag a user placed on an internship. Returns false
// when no such flag existed.
func (r *FlagRepository) DeleteTx(ctx context.Context, tx pgx.Tx, userID, internshipID int64) (bool, error) {
	tag, err := tx.Exec(ctx, `
		DELETE FROM flags WHERE user_id = $1 AND internship_id = $2`,
		userID, internshipID)

	if err != nil {
		return false, fmt.Errorf("error deleting flag: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteAllTx removes every flag on an internship
func (r *FlagRepository) DeleteAllTx(ctx context.Context, tx pgx.Tx, internshipID int64) error {
	_, err := tx.Exec(ctx, `DELETE FROM flags WHERE internship_id = $1`, internshipID)
	if err != nil {
		return fmt.Errorf("error clearing flags: %w", err)
	}

	return nil
}

// CountTx counts the remaining flags on an internship
func (r *FlagRepository) CountTx(ctx context.Context, tx pgx.Tx, internshipID int64) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM flags WHERE internship_id = $1`,
		internshipID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting flags: %w", err)
	}

	return count, nil
}
