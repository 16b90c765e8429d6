package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/auth"
)

// CreateDefaultData ensures the role catalog exists and optionally creates
// the default admin account. Roles have fixed identifiers so that tokens
// and foreign keys stay stable across environments.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger, adminUsername, adminPassword string) error {
	lgr.Info().Msg("Checking/Creating default data (Roles/Admin)...")
	var finalErr error

	roles := []appModels.Role{
		{ID: appModels.RoleAdminID, Name: appModels.RoleAdmin},
		{ID: appModels.RoleInstructorID, Name: appModels.RoleInstructor},
		{ID: appModels.RoleStudentID, Name: appModels.RoleStudent},
	}

	for _, role := range roles {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO roles (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			role.ID, string(role.Name))
		if err != nil {
			lgr.Error().Err(err).Str("role", string(role.Name)).Msg("Error creating role")
			finalErr = errors.Join(finalErr, fmt.Errorf("failed to seed role %s: %w", role.Name, err))
		}
	}

	// The admin account is only seeded when a password is configured.
	if adminPassword == "" {
		lgr.Debug().Msg("Admin password not configured, skipping admin seeding")
		return finalErr
	}

	var exists bool
	err := dbPool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, adminUsername).Scan(&exists)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}

	if exists {
		return finalErr
	}

	lgr.Info().Str("username", adminUsername).Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	_, err = dbPool.Exec(ctx,
		`INSERT INTO users (first_name, last_name, username, password, role_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		"Admin", "User", adminUsername, hashedPassword, appModels.RoleAdminID)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default admin user created")
	return finalErr
}
