package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/apperrors"
)

// TimePeriodRepository handles time period database operations
type TimePeriodRepository struct {
	db *pgxpool.Pool
}

// NewTimePeriodRepository creates a new TimePeriodRepository
func NewTimePeriodRepository(db *pgxpool.Pool) *TimePeriodRepository {
	return &TimePeriodRepository{
		db: db,
	}
}

// Create inserts a new time period and returns its ID
func (r *TimePeriodRepository) Create(ctx context.Context, period *models.TimePeriod) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO time_periods (name, start_date, end_date)
		VALUES ($1, $2, $3)
		RETURNING id`,
		period.Name, period.StartDate, period.EndDate).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating time period: %w", err)
	}

	return id, nil
}

// GetByID retrieves a time period by ID
func (r *TimePeriodRepository) GetByID(ctx context.Context, id int64) (*models.TimePeriod, error) {
	period := &models.TimePeriod{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, start_date, end_date
		FROM time_periods
		WHERE id = $1`,
		id).Scan(&period.ID, &period.Name, &period.StartDate, &period.EndDate)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTimePeriodNotFound
		}
		return nil, fmt.Errorf("error getting time period: %w", err)
	}

	return period, nil
}

// GetAll retrieves all time periods ordered by start date
func (r *TimePeriodRepository) GetAll(ctx context.Context) ([]*models.TimePeriod, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, start_date, end_date
		FROM time_periods
		ORDER BY start_date`)
	if err != nil {
		return nil, fmt.Errorf("error listing time periods: %w", err)
	}
	defer rows.Close()

	var periods []*models.TimePeriod
	for rows.Next() {
		period := &models.TimePeriod{}
		if err := rows.Scan(&period.ID, &period.Name, &period.StartDate, &period.EndDate); err != nil {
			return nil, fmt.Errorf("error scanning time period: %w", err)
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time periods: %w", err)
	}

	return periods, nil
}

// Delete removes a time period. Internships in that period are deleted with
// it; users who had selected it just lose the selection.
func (r *TimePeriodRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM time_periods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting time period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTimePeriodNotFound
	}

	return nil
}
