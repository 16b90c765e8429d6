package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/app/models/dto"
	"github.com/internhub/backend/internal/pkg/apperrors"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func i64Ptr(i int64) *int64     { return &i }

func existingUser() *models.User {
	return &models.User{
		ID:        7,
		FirstName: "John",
		LastName:  "Doe",
		Username:  "jdoe",
		RoleID:    models.RoleStudentID,
	}
}

func TestUserService_EditProfile(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		timePeriodRepo := new(MockTimePeriodRepository)
		userRepo.On("GetByID", mock.Anything, int64(7)).Return(existingUser(), nil)
		userRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.FirstName == "Johnny" && u.LastName == "Doe" &&
				u.Username == "jdoe" && u.GPA != nil && *u.GPA == 3.4
		})).Return(nil)

		service := NewUserService(userRepo, roleRepo, timePeriodRepo)
		user, err := service.EditProfile(context.Background(), 7, &dto.EditProfileRequest{
			FirstName: strPtr("Johnny"),
			GPA:       f64Ptr(3.4),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Johnny", user.FirstName)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects out-of-range gpa", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, int64(7)).Return(existingUser(), nil)

		service := NewUserService(userRepo, new(MockRoleRepository), new(MockTimePeriodRepository))
		_, err := service.EditProfile(context.Background(), 7, &dto.EditProfileRequest{
			GPA: f64Ptr(4.5),
		})

		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, int64(7)).Return(existingUser(), nil)

		service := NewUserService(userRepo, new(MockRoleRepository), new(MockTimePeriodRepository))
		_, err := service.EditProfile(context.Background(), 7, &dto.EditProfileRequest{
			Email: strPtr("not-an-email"),
		})

		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("validates the time period exists", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		timePeriodRepo := new(MockTimePeriodRepository)
		userRepo.On("GetByID", mock.Anything, int64(7)).Return(existingUser(), nil)
		timePeriodRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrTimePeriodNotFound)

		service := NewUserService(userRepo, new(MockRoleRepository), timePeriodRepo)
		_, err := service.EditProfile(context.Background(), 7, &dto.EditProfileRequest{
			InternshipTimePeriodID: i64Ptr(99),
		})

		assert.ErrorIs(t, err, apperrors.ErrTimePeriodNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrUserNotFound)

		service := NewUserService(userRepo, new(MockRoleRepository), new(MockTimePeriodRepository))
		_, err := service.EditProfile(context.Background(), 404, &dto.EditProfileRequest{})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_ChangeRole(t *testing.T) {
	t.Run("promotes a user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		roleRepo.On("GetByID", mock.Anything, models.RoleInstructorID).
			Return(&models.Role{ID: models.RoleInstructorID, Name: models.RoleInstructor}, nil)
		userRepo.On("UpdateRole", mock.Anything, "jdoe", models.RoleInstructorID).Return(nil)

		service := NewUserService(userRepo, roleRepo, new(MockTimePeriodRepository))
		err := service.ChangeRole(context.Background(), "jdoe", models.RoleInstructorID)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown role", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		roleRepo.On("GetByID", mock.Anything, int64(9)).Return(nil, apperrors.ErrRoleNotFound)

		service := NewUserService(userRepo, roleRepo, new(MockTimePeriodRepository))
		err := service.ChangeRole(context.Background(), "jdoe", 9)

		assert.ErrorIs(t, err, apperrors.ErrRoleNotFound)
		userRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_GetStudents(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByRoleID", mock.Anything, models.RoleStudentID).
		Return([]*models.User{existingUser()}, nil)

	service := NewUserService(userRepo, new(MockRoleRepository), new(MockTimePeriodRepository))
	students, err := service.GetStudents(context.Background())

	assert.NoError(t, err)
	assert.Len(t, students, 1)
	assert.Equal(t, "jdoe", students[0].Username)
}
