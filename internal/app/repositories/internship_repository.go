package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/apperrors"
	"github.com/internhub/backend/internal/pkg/dberrors"
)

const internshipColumns = `
	id, company, position, website, deadline, author_id, time_period_id,
	company_photo_link, flagged, created_at`

// InternshipRepository handles internship database operations
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{
		db: db,
	}
}

func scanInternship(row pgx.Row) (*models.Internship, error) {
	internship := &models.Internship{}
	err := row.Scan(
		&internship.ID, &internship.Company, &internship.Position, &internship.Website,
		&internship.Deadline, &internship.AuthorID, &internship.TimePeriodID,
		&internship.CompanyPhotoLink, &internship.Flagged, &internship.CreatedAt)
	if err != nil {
		return nil, err
	}
	return internship, nil
}

// Create inserts a new internship listing and returns its ID. The creation
// timestamp comes from the database and is written back onto the model.
func (r *InternshipRepository) Create(ctx context.Context, internship *models.Internship) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO internships (company, position, website, deadline, author_id, time_period_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		internship.Company, internship.Position, internship.Website,
		internship.Deadline, internship.AuthorID, internship.TimePeriodID).Scan(&id, &internship.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrTimePeriodNotFound
		}
		return 0, fmt.Errorf("error creating internship: %w", err)
	}

	return id, nil
}

// GetByID retrieves an internship by ID
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	internship, err := scanInternship(r.db.QueryRow(ctx, `
		SELECT `+internshipColumns+`
		FROM internships
		WHERE id = $1`,
		id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("error getting internship: %w", err)
	}

	return internship, nil
}

// GetAll retrieves all internships, closest deadline first
func (r *InternshipRepository) GetAll(ctx context.Context) ([]*models.Internship, error) {
	return r.queryInternships(ctx, `
		SELECT `+internshipColumns+`
		FROM internships
		ORDER BY deadline`)
}

// GetByAuthorID retrieves all internships posted by a user
func (r *InternshipRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]*models.Internship, error) {
	return r.queryInternships(ctx, `
		SELECT `+internshipColumns+`
		FROM internships
		WHERE author_id = $1
		ORDER BY deadline`, authorID)
}

func (r *InternshipRepository) queryInternships(ctx context.Context, query string, args ...any) ([]*models.Internship, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing internships: %w", err)
	}
	defer rows.Close()

	var internships []*models.Internship
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning internship: %w", err)
		}
		internships = append(internships, internship)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating internships: %w", err)
	}

	return internships, nil
}

// Update persists the editable fields of an internship
func (r *InternshipRepository) Update(ctx context.Context, internship *models.Internship) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE internships
		SET company = $1, position = $2, website = $3, deadline = $4, time_period_id = $5
		WHERE id = $6`,
		internship.Company, internship.Position, internship.Website,
		internship.Deadline, internship.TimePeriodID, internship.ID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrTimePeriodNotFound
		}
		return fmt.Errorf("error updating internship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	return nil
}

// UpdateCompanyPhotoLink sets or clears the company photo URL
func (r *InternshipRepository) UpdateCompanyPhotoLink(ctx context.Context, id int64, link *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE internships SET company_photo_link = $1 WHERE id = $2`,
		link, id)

	if err != nil {
		return fmt.Errorf("error updating company photo link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	return nil
}

// Delete removes an internship. Flags and favorites cascade.
func (r *InternshipRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM internships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting internship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	return nil
}

// SetFlaggedTx updates the denormalized flagged marker inside a transaction
func (r *InternshipRepository) SetFlaggedTx(ctx context.Context, tx pgx.Tx, id int64, flagged bool) error {
	tag, err := tx.Exec(ctx, `
		UPDATE internships SET flagged = $1 WHERE id = $2`,
		flagged, id)

	if err != nil {
		return fmt.Errorf("error updating flagged state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	return nil
}
