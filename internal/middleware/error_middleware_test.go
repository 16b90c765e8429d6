package middleware

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/internhub/backend/internal/pkg/apperrors"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "internship not found",
			err:         apperrors.ErrInternshipNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Internship not found",
		},
		{
			name:        "user not found",
			err:         apperrors.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "User not found",
		},
		{
			name:        "duplicate username",
			err:         apperrors.ErrUsernameExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "Username already exists",
		},
		{
			name:        "permission denied",
			err:         apperrors.ErrPermissionDenied,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Permission denied",
		},
		{
			name:        "invalid credentials",
			err:         apperrors.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid username or password",
		},
		{
			name:        "expired token",
			err:         apperrors.ErrTokenExpired,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Token has expired",
		},
		{
			name:        "past deadline",
			err:         apperrors.ErrDeadlineInPast,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Deadline must be in the future",
		},
		{
			name:        "bad request carries its own message",
			err:         apperrors.NewBadRequestError("Invalid date format, expected YYYY-MM-DD"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid date format, expected YYYY-MM-DD",
		},
		{
			name:        "storage failure",
			err:         &apperrors.CustomError{Err: apperrors.ErrUpstreamStorage, Message: "File upload failed"},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "File storage unavailable",
		},
		{
			name:        "unknown errors stay opaque",
			err:         assert.AnError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := classifyError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
