// Package bootstrap assembles the application's dependencies at startup
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/internhub/backend/internal/app/auth"
	appControllers "github.com/internhub/backend/internal/app/controllers"
	appMigrations "github.com/internhub/backend/internal/app/migrations"
	appRepos "github.com/internhub/backend/internal/app/repositories"
	appRoutes "github.com/internhub/backend/internal/app/routes"
	appServices "github.com/internhub/backend/internal/app/services"
	"github.com/internhub/backend/internal/config"
	"github.com/internhub/backend/internal/db"
	pkgAuth "github.com/internhub/backend/internal/pkg/auth"
	"github.com/internhub/backend/internal/pkg/filestorage"
	"github.com/internhub/backend/internal/pkg/helpers"
	"github.com/internhub/backend/internal/pkg/logger"
	"github.com/internhub/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	JWTService  *pkgAuth.JWTService
	FileStorage filestorage.ObjectStorage
	Controllers *appRoutes.Controllers
	Logger      zerolog.Logger

	// Set only when the local storage backend is active
	LocalUploadsDir string
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		// Missing seed data is not fatal for startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// setupFileStorage picks the storage backend from the configuration
func setupFileStorage(cfg *config.Config, lgr zerolog.Logger) (filestorage.ObjectStorage, string, error) {
	switch cfg.Storage.Provider {
	case "s3":
		storage, err := filestorage.NewS3Storage(context.Background(), filestorage.S3Config{
			Bucket:          cfg.Storage.S3Bucket,
			Region:          cfg.Storage.S3Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Endpoint:        cfg.Storage.S3Endpoint,
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize s3 storage: %w", err)
		}
		return storage, "", nil
	default:
		baseURL := "http://localhost:" + cfg.Server.Port + cfg.Storage.BaseURL
		storage, err := filestorage.NewLocalStorage(cfg.Storage.LocalPath, baseURL)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize file storage")
			return nil, "", fmt.Errorf("failed to initialize file storage: %w", err)
		}
		return storage, cfg.Storage.LocalPath, nil
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	storage, localUploadsDir, err := setupFileStorage(cfg, lgr)
	if err != nil {
		return nil, err
	}
	deps.FileStorage = storage
	deps.LocalUploadsDir = localUploadsDir

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	authzService := appAuth.NewAuthorizationService(deps.Repos.InternshipRepository)

	authService := appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	userService := appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.RoleRepository,
		deps.Repos.TimePeriodRepository,
	)
	internshipService := appServices.NewInternshipService(
		deps.Repos.InternshipRepository,
		deps.Repos.TimePeriodRepository,
	)
	flagService := appServices.NewFlagService(
		deps.Repos.InternshipRepository,
		deps.Repos.FlagRepository,
		database,
	)
	favoriteService := appServices.NewFavoriteService(
		deps.Repos.InternshipRepository,
		deps.Repos.FavoriteRepository,
	)
	timePeriodService := appServices.NewTimePeriodService(deps.Repos.TimePeriodRepository)
	uploadService := appServices.NewUploadService(
		deps.Repos.UserRepository,
		deps.Repos.InternshipRepository,
		deps.FileStorage,
	)

	deps.Controllers = &appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(authService, lgr),
		User:       appControllers.NewUserController(userService, favoriteService, lgr),
		Internship: appControllers.NewInternshipController(internshipService, flagService, favoriteService, authzService, lgr),
		TimePeriod: appControllers.NewTimePeriodController(timePeriodService, lgr),
		Admin:      appControllers.NewAdminController(userService, timePeriodService, lgr),
		Upload:     appControllers.NewUploadController(uploadService, authzService, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRoutes(router, deps.Controllers, deps.JWTService, deps.LocalUploadsDir)

	return router
}
