package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/apperrors"
	"github.com/internhub/backend/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		username  string
		password  string
		repoErr   error
		wantErr   error
		skipRepo  bool
	}{
		{
			name:      "successful registration",
			firstName: "John",
			lastName:  "Doe",
			username:  "jdoe",
			password:  "hardpass1",
		},
		{
			name:      "duplicate username",
			firstName: "John",
			lastName:  "Doe",
			username:  "jdoe",
			password:  "hardpass1",
			repoErr:   apperrors.ErrUsernameExists,
			wantErr:   apperrors.ErrUsernameExists,
		},
		{
			name:      "password too short",
			firstName: "John",
			lastName:  "Doe",
			username:  "jdoe",
			password:  "short",
			wantErr:   apperrors.ErrBadRequest,
			skipRepo:  true,
		},
		{
			name:     "missing first name",
			lastName: "Doe",
			username: "jdoe",
			password: "hardpass1",
			wantErr:  apperrors.ErrBadRequest,
			skipRepo: true,
		},
		{
			name:      "username with invalid characters",
			firstName: "John",
			lastName:  "Doe",
			username:  "j doe!",
			password:  "hardpass1",
			wantErr:   apperrors.ErrBadRequest,
			skipRepo:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			if !tt.skipRepo {
				userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					// Every registration starts as a student with a hashed password
					return u.RoleID == models.RoleStudentID &&
						u.Username == tt.username &&
						u.Password != tt.password
				})).Return(int64(1), tt.repoErr)
			}

			service := NewAuthService(userRepo, newTestJWTService())
			err := service.Register(context.Background(), tt.firstName, tt.lastName, tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := auth.HashPassword("hardpass1")
	assert.NoError(t, err)

	user := &models.User{
		ID:       7,
		Username: "jdoe",
		Password: hashed,
		RoleID:   models.RoleStudentID,
	}

	t.Run("successful login returns a valid token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByUsername", mock.Anything, "jdoe").Return(user, nil)

		jwtService := newTestJWTService()
		service := NewAuthService(userRepo, jwtService)

		token, err := service.Login(context.Background(), "jdoe", "hardpass1")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := jwtService.ValidateAndExtractClaims(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "jdoe", claims.Username)
		assert.Equal(t, string(models.RoleStudent), claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByUsername", mock.Anything, "jdoe").Return(user, nil)

		service := NewAuthService(userRepo, newTestJWTService())
		_, err := service.Login(context.Background(), "jdoe", "wrongpass")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown username surfaces as not found", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrUserNotFound)

		service := NewAuthService(userRepo, newTestJWTService())
		_, err := service.Login(context.Background(), "ghost", "hardpass1")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
