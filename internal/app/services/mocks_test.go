package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/db"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByRoleID(ctx context.Context, roleID int64) ([]*models.User, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, username string, roleID int64) error {
	args := m.Called(ctx, username, roleID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfilePictureLink(ctx context.Context, userID int64, link *string) error {
	args := m.Called(ctx, userID, link)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateCVLink(ctx context.Context, userID int64, link *string) error {
	args := m.Called(ctx, userID, link)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoleRepository is a mock implementation of RoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

// MockInternshipRepository is a mock implementation of InternshipRepository
type MockInternshipRepository struct {
	mock.Mock
}

func (m *MockInternshipRepository) Create(ctx context.Context, internship *models.Internship) (int64, error) {
	args := m.Called(ctx, internship)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Internship), args.Error(1)
}

func (m *MockInternshipRepository) GetAll(ctx context.Context) ([]*models.Internship, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Internship), args.Error(1)
}

func (m *MockInternshipRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]*models.Internship, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Internship), args.Error(1)
}

func (m *MockInternshipRepository) Update(ctx context.Context, internship *models.Internship) error {
	args := m.Called(ctx, internship)
	return args.Error(0)
}

func (m *MockInternshipRepository) UpdateCompanyPhotoLink(ctx context.Context, id int64, link *string) error {
	args := m.Called(ctx, id, link)
	return args.Error(0)
}

func (m *MockInternshipRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInternshipRepository) SetFlaggedTx(ctx context.Context, tx pgx.Tx, id int64, flagged bool) error {
	args := m.Called(ctx, tx, id, flagged)
	return args.Error(0)
}

// MockTimePeriodRepository is a mock implementation of TimePeriodRepository
type MockTimePeriodRepository struct {
	mock.Mock
}

func (m *MockTimePeriodRepository) Create(ctx context.Context, period *models.TimePeriod) (int64, error) {
	args := m.Called(ctx, period)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTimePeriodRepository) GetByID(ctx context.Context, id int64) (*models.TimePeriod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TimePeriod), args.Error(1)
}

func (m *MockTimePeriodRepository) GetAll(ctx context.Context) ([]*models.TimePeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TimePeriod), args.Error(1)
}

func (m *MockTimePeriodRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFlagRepository is a mock implementation of FlagRepository
type MockFlagRepository struct {
	mock.Mock
}

func (m *MockFlagRepository) CreateTx(ctx context.Context, tx pgx.Tx, flag *models.Flag) (bool, error) {
	args := m.Called(ctx, tx, flag)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlagRepository) DeleteTx(ctx context.Context, tx pgx.Tx, userID, internshipID int64) (bool, error) {
	args := m.Called(ctx, tx, userID, internshipID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlagRepository) DeleteAllTx(ctx context.Context, tx pgx.Tx, internshipID int64) error {
	args := m.Called(ctx, tx, internshipID)
	return args.Error(0)
}

func (m *MockFlagRepository) CountTx(ctx context.Context, tx pgx.Tx, internshipID int64) (int64, error) {
	args := m.Called(ctx, tx, internshipID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFavoriteRepository is a mock implementation of FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, userID, internshipID int64) error {
	args := m.Called(ctx, userID, internshipID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, internshipID int64) (bool, error) {
	args := m.Called(ctx, userID, internshipID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) GetInternshipsByUserID(ctx context.Context, userID int64) ([]*models.Internship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Internship), args.Error(1)
}

// fakeTxRunner runs the transaction function directly with a nil tx
type fakeTxRunner struct {
	err error
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx, nil)
}
