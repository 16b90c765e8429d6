package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/internhub/backend/internal/pkg/apperrors"
	"github.com/internhub/backend/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
	ContextRoleKey     = "role"
)

// JWTAuth validates the bearer token and stores the caller's identity on
// the request context.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.ErrInvalidFormat)
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			HandleAPIError(c, translateTokenError(err))
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Set(ContextRoleKey, claims.Role)

		c.Next()
	}
}

// RoleRequired allows the request through only for callers holding one of
// the listed roles. Must run after JWTAuth.
func RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole := c.GetString(ContextRoleKey)
		for _, role := range roles {
			if callerRole == role {
				c.Next()
				return
			}
		}

		HandleAPIError(c, apperrors.ErrPermissionDenied)
	}
}

// CurrentUserID returns the authenticated user's ID from the context
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64(ContextUserIDKey)
}

func translateTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return apperrors.ErrTokenExpired
	case errors.Is(err, auth.ErrInvalidFormat):
		return apperrors.ErrInvalidFormat
	default:
		return apperrors.ErrTokenInvalid
	}
}
