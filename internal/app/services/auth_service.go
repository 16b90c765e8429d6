package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/apperrors"
	"github.com/internhub/backend/internal/pkg/auth"
	"github.com/internhub/backend/internal/pkg/logger"
	"github.com/internhub/backend/internal/pkg/validation"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account. Every registration starts as a student;
// roles are promoted by an admin afterwards.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, username, password string) error {
	if !validation.NewStringValidation(firstName).WithMinLength(validation.NameMinLength).WithMaxLength(validation.NameMaxLength).Validate() ||
		!validation.NewStringValidation(lastName).WithMinLength(validation.NameMinLength).WithMaxLength(validation.NameMaxLength).Validate() {
		return apperrors.NewBadRequestError("First name and last name are required")
	}

	if !validation.NewStringValidation(username).WithPattern(validation.CompiledPatterns.Username).Validate() {
		return apperrors.NewBadRequestError("Invalid username")
	}

	if len(password) < validation.PasswordMinLength {
		return apperrors.NewBadRequestError("Password must be at least 8 characters")
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Password:  hashedPassword,
		RoleID:    models.RoleStudentID,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// Uniqueness is enforced by the database constraint
		if errors.Is(err, apperrors.ErrUsernameExists) {
			return apperrors.ErrUsernameExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id

	logger.Info().Int64("user_id", id).Str("username", username).Msg("User registered")
	return nil
}

// Login verifies the credentials and returns a signed access token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info().Int64("user_id", user.ID).Msg("User logged in")
	return token, nil
}
