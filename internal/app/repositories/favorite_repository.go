package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/dberrors"
)

// FavoriteRepository handles favorite database operations
type FavoriteRepository struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{
		db: db,
	}
}

// Create marks an internship as a favorite of the user. Favoriting twice is
// a no-op.
func (r *FavoriteRepository) Create(ctx context.Context, userID, internshipID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO favorites (user_id, internship_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, internship_id) DO NOTHING`,
		userID, internshipID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return fmt.Errorf("internship or user missing: %w", err)
		}
		return fmt.Errorf("error creating favorite: %w", err)
	}

	return nil
}

// Delete removes an internship from the user's favorites. Returns false
// when it was not favorited.
func (r *FavoriteRepository) Delete(ctx context.Context, userID, internshipID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND internship_id = $2`,
		userID, internshipID)

	if err != nil {
		return false, fmt.Errorf("error deleting favorite: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetInternshipsByUserID retrieves the internships a user favorited,
// closest deadline first
func (r *FavoriteRepository) GetInternshipsByUserID(ctx context.Context, userID int64) ([]*models.Internship, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.company, i.position, i.website, i.deadline, i.author_id,
		       i.time_period_id, i.company_photo_link, i.flagged, i.created_at
		FROM favorites f
		JOIN internships i ON i.id = f.internship_id
		WHERE f.user_id = $1
		ORDER BY i.deadline`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}
	defer rows.Close()

	var internships []*models.Internship
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning favorite internship: %w", err)
		}
		internships = append(internships, internship)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}

	return internships, nil
}
