package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/app/models/dto"
	"github.com/internhub/backend/internal/pkg/apperrors"
	"github.com/internhub/backend/internal/pkg/logger"
	"github.com/internhub/backend/internal/pkg/validation"
)

// UserService handles user profile and account operations
type UserService struct {
	userRepo       UserRepository
	roleRepo       RoleRepository
	timePeriodRepo TimePeriodRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserRepository, roleRepo RoleRepository, timePeriodRepo TimePeriodRepository) *UserService {
	return &UserService{
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		timePeriodRepo: timePeriodRepo,
	}
}

// GetByID retrieves a single user
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetAll retrieves every user
func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetStudents retrieves all users holding the student role
func (s *UserService) GetStudents(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetByRoleID(ctx, models.RoleStudentID)
}

// EditProfile applies a partial profile update to the caller's own account.
// Identity fields (id, username, role) are never touched.
func (s *UserService) EditProfile(ctx context.Context, userID int64, req *dto.EditProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.GPA != nil {
		if !validation.ValidGPA(*req.GPA) {
			return nil, apperrors.NewBadRequestError("GPA must be between 0 and 4")
		}
		user.GPA = req.GPA
	}
	if req.AcademicYear != nil {
		user.AcademicYear = req.AcademicYear
	}
	if req.GithubLink != nil {
		user.GithubLink = req.GithubLink
	}
	if req.LinkedinLink != nil {
		user.LinkedinLink = req.LinkedinLink
	}
	if req.WebsiteLink != nil {
		user.WebsiteLink = req.WebsiteLink
	}
	if req.Email != nil {
		if *req.Email != "" && !validation.CompiledPatterns.Email.MatchString(strings.ToLower(*req.Email)) {
			return nil, apperrors.NewBadRequestError("Invalid email format")
		}
		user.Email = req.Email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Description != nil {
		user.Description = req.Description
	}
	if req.InternshipTimePeriodID != nil {
		if _, err := s.timePeriodRepo.GetByID(ctx, *req.InternshipTimePeriodID); err != nil {
			return nil, err
		}
		user.InternshipTimePeriodID = req.InternshipTimePeriodID
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	logger.Info().Int64("user_id", userID).Msg("Profile updated")
	return user, nil
}

// ChangeRole assigns a new role to the user with the given username
func (s *UserService) ChangeRole(ctx context.Context, username string, roleID int64) error {
	if _, err := s.roleRepo.GetByID(ctx, roleID); err != nil {
		if errors.Is(err, apperrors.ErrRoleNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return fmt.Errorf("failed to look up role: %w", err)
	}

	if err := s.userRepo.UpdateRole(ctx, username, roleID); err != nil {
		return err
	}

	logger.Info().Str("username", username).Int64("role_id", roleID).Msg("Role changed")
	return nil
}

// Delete removes a user account and everything it owns
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("user_id", id).Msg("User deleted")
	return nil
}
