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

const userColumns = `
	u.id, u.first_name, u.last_name, u.username, u.password, u.gpa,
	u.academic_year, u.github_link, u.linkedin_link, u.website_link,
	u.profile_picture_link, u.cv_link, u.email, u.phone_number, u.description,
	u.role_id, u.internship_time_period_id, r.name`

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	var roleName string
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Password, &user.GPA,
		&user.AcademicYear, &user.GithubLink, &user.LinkedinLink, &user.WebsiteLink,
		&user.ProfilePictureLink, &user.CVLink, &user.Email, &user.PhoneNumber, &user.Description,
		&user.RoleID, &user.InternshipTimePeriodID, &roleName)
	if err != nil {
		return nil, err
	}
	user.Role = &models.Role{ID: user.RoleID, Name: models.RoleType(roleName)}
	return user, nil
}

// Create inserts a new user and returns its ID. A duplicate username is
// reported as apperrors.ErrUsernameExists.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, username, password, role_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.FirstName, user.LastName, user.Username, user.Password, user.RoleID).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return 0, apperrors.ErrUsernameExists
		}
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1`,
		id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.username = $1`,
		username))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// GetAll retrieves all users
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	return r.queryUsers(ctx, `
		SELECT `+userColumns+`
		FROM users u
		JOIN roles r ON r.id = u.role_id
		ORDER BY u.id`)
}

// GetByRoleID retrieves all users with the given role
func (r *UserRepository) GetByRoleID(ctx context.Context, roleID int64) ([]*models.User, error) {
	return r.queryUsers(ctx, `
		SELECT `+userColumns+`
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.role_id = $1
		ORDER BY u.id`, roleID)
}

func (r *UserRepository) queryUsers(ctx context.Context, query string, args ...any) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// UpdateProfile persists the editable profile fields of a user
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, gpa = $3, academic_year = $4,
		    github_link = $5, linkedin_link = $6, website_link = $7,
		    email = $8, phone_number = $9, description = $10,
		    internship_time_period_id = $11
		WHERE id = $12`,
		user.FirstName, user.LastName, user.GPA, user.AcademicYear,
		user.GithubLink, user.LinkedinLink, user.WebsiteLink,
		user.Email, user.PhoneNumber, user.Description,
		user.InternshipTimePeriodID, user.ID)

	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateRole changes the role of the user with the given username
func (r *UserRepository) UpdateRole(ctx context.Context, username string, roleID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET role_id = $1 WHERE username = $2`,
		roleID, username)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRoleNotFound
		}
		return fmt.Errorf("error updating role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateProfilePictureLink sets or clears the profile picture URL
func (r *UserRepository) UpdateProfilePictureLink(ctx context.Context, userID int64, link *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET profile_picture_link = $1 WHERE id = $2`,
		link, userID)

	if err != nil {
		return fmt.Errorf("error updating profile picture link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateCVLink sets or clears the CV URL
func (r *UserRepository) UpdateCVLink(ctx context.Context, userID int64, link *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET cv_link = $1 WHERE id = $2`,
		link, userID)

	if err != nil {
		return fmt.Errorf("error updating cv link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user. Owned internships, flags and favorites cascade.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
