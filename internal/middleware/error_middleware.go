package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internhub/backend/internal/app/models/dto"
	"github.com/internhub/backend/internal/pkg/apperrors"
	"github.com/internhub/backend/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Every error
// body has the shape {"message": "..."}.
func HandleAPIError(c *gin.Context, err error) {
	status, message := classifyError(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	} else {
		logger.Debug().Err(err).Str("path", c.Request.URL.Path).Int("status", status).Msg("Request rejected")
	}

	c.AbortWithStatusJSON(status, dto.NewMessageResponse(message))
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, apperrors.ErrInternshipNotFound):
		return http.StatusNotFound, "Internship not found"
	case errors.Is(err, apperrors.ErrTimePeriodNotFound):
		return http.StatusNotFound, "Time period not found"
	case errors.Is(err, apperrors.ErrRoleNotFound):
		return http.StatusNotFound, "Role not found"
	case errors.Is(err, apperrors.ErrFlagNotFound):
		return http.StatusNotFound, "Flag not found"
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, messageOf(err, "Resource not found")

	case errors.Is(err, apperrors.ErrUsernameExists):
		return http.StatusConflict, "Username already exists"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, messageOf(err, "Conflict")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, "Token has expired"
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusUnauthorized, "Permission denied"

	case errors.Is(err, apperrors.ErrDeadlineInPast):
		return http.StatusBadRequest, "Deadline must be in the future"
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, messageOf(err, "Invalid request body")

	case errors.Is(err, apperrors.ErrUpstreamStorage):
		return http.StatusInternalServerError, "File storage unavailable"
	}

	return http.StatusInternalServerError, "Internal server error"
}

// messageOf prefers the message carried by a CustomError over the fallback
func messageOf(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
