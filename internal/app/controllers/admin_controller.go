package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/internhub/backend/internal/app/models/dto"
	"github.com/internhub/backend/internal/app/services"
	"github.com/internhub/backend/internal/middleware"
	"github.com/internhub/backend/internal/pkg/apperrors"
)

// AdminController handles administration endpoints. All of its routes sit
// behind the admin role check.
type AdminController struct {
	userService       *services.UserService
	timePeriodService *services.TimePeriodService
	logger            zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(userService *services.UserService, timePeriodService *services.TimePeriodService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		userService:       userService,
		timePeriodService: timePeriodService,
		logger:            logger,
	}
}

// DeleteUser handles DELETE /admin/delete_user/:id
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("User deleted successfully"))
}

// ChangeRole handles PUT /admin/change_role/:username
func (c *AdminController) ChangeRole(ctx *gin.Context) {
	username := ctx.Param("username")
	if username == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Username is required"))
		return
	}

	var req dto.ChangeRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid role change payload")
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	if err := c.userService.ChangeRole(ctx, username, req.RoleID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Role changed successfully"))
}

// AddTimePeriod handles POST /admin/add_time_period
func (c *AdminController) AddTimePeriod(ctx *gin.Context) {
	var req dto.AddTimePeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid time period payload")
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	if _, err := c.timePeriodService.Add(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Time period added successfully"))
}

// DeleteTimePeriod handles DELETE /admin/delete_time_period/:id
func (c *AdminController) DeleteTimePeriod(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.timePeriodService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Time period deleted successfully"))
}
