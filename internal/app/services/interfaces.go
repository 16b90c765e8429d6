package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/db"
)

// Repository interfaces consumed by the services. The concrete
// implementations live in the repositories package; tests substitute mocks.

// UserRepository defines user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByRoleID(ctx context.Context, roleID int64) ([]*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, username string, roleID int64) error
	UpdateProfilePictureLink(ctx context.Context, userID int64, link *string) error
	UpdateCVLink(ctx context.Context, userID int64, link *string) error
	Delete(ctx context.Context, id int64) error
}

// RoleRepository defines role lookups
type RoleRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Role, error)
}

// InternshipRepository defines internship persistence operations
type InternshipRepository interface {
	Create(ctx context.Context, internship *models.Internship) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	GetAll(ctx context.Context) ([]*models.Internship, error)
	GetByAuthorID(ctx context.Context, authorID int64) ([]*models.Internship, error)
	Update(ctx context.Context, internship *models.Internship) error
	UpdateCompanyPhotoLink(ctx context.Context, id int64, link *string) error
	Delete(ctx context.Context, id int64) error
	SetFlaggedTx(ctx context.Context, tx pgx.Tx, id int64, flagged bool) error
}

// TimePeriodRepository defines time period persistence operations
type TimePeriodRepository interface {
	Create(ctx context.Context, period *models.TimePeriod) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.TimePeriod, error)
	GetAll(ctx context.Context) ([]*models.TimePeriod, error)
	Delete(ctx context.Context, id int64) error
}

// FlagRepository defines flag persistence operations
type FlagRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, flag *models.Flag) (bool, error)
	DeleteTx(ctx context.Context, tx pgx.Tx, userID, internshipID int64) (bool, error)
	DeleteAllTx(ctx context.Context, tx pgx.Tx, internshipID int64) error
	CountTx(ctx context.Context, tx pgx.Tx, internshipID int64) (int64, error)
}

// FavoriteRepository defines favorite persistence operations
type FavoriteRepository interface {
	Create(ctx context.Context, userID, internshipID int64) error
	Delete(ctx context.Context, userID, internshipID int64) (bool, error)
	GetInternshipsByUserID(ctx context.Context, userID int64) ([]*models.Internship, error)
}

// TxRunner executes a function inside a database transaction
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}
