package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/internhub/backend/internal/app/models/dto"
	"github.com/internhub/backend/internal/app/services"
	"github.com/internhub/backend/internal/middleware"
	"github.com/internhub/backend/internal/pkg/apperrors"
)

// UserController handles user listing and profile operations
type UserController struct {
	userService     *services.UserService
	favoriteService *services.FavoriteService
	logger          zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, favoriteService *services.FavoriteService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService:     userService,
		favoriteService: favoriteService,
		logger:          logger,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid ID"))
		return 0, false
	}
	return id, true
}

// GetAll handles GET /users
func (c *UserController) GetAll(ctx *gin.Context) {
	users, err := c.userService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// GetStudents handles GET /users/students
func (c *UserController) GetStudents(ctx *gin.Context) {
	students, err := c.userService.GetStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetByID handles GET /users/:id
func (c *UserController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// EditProfile handles PUT /users/edit_profile
func (c *UserController) EditProfile(ctx *gin.Context) {
	var req dto.EditProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	user, err := c.userService.EditProfile(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// GetFavorites handles GET /users/favorites
func (c *UserController) GetFavorites(ctx *gin.Context) {
	internships, err := c.favoriteService.GetFavorites(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInternshipListResponse(internships))
}
