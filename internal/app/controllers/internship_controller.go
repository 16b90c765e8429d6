package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appauth "github.com/internhub/backend/internal/app/auth"
	"github.com/internhub/backend/internal/app/models/dto"
	"github.com/internhub/backend/internal/app/services"
	"github.com/internhub/backend/internal/middleware"
	"github.com/internhub/backend/internal/pkg/apperrors"
)

// FlagRequest is the optional body for PUT /internships/flag/:id.
type FlagRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// InternshipController handles internship listing operations
type InternshipController struct {
	internshipService *services.InternshipService
	flagService       *services.FlagService
	favoriteService   *services.FavoriteService
	authzService      *appauth.AuthorizationService
	logger            zerolog.Logger
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(
	internshipService *services.InternshipService,
	flagService *services.FlagService,
	favoriteService *services.FavoriteService,
	authzService *appauth.AuthorizationService,
	logger zerolog.Logger,
) *InternshipController {
	return &InternshipController{
		internshipService: internshipService,
		flagService:       flagService,
		favoriteService:   favoriteService,
		authzService:      authzService,
		logger:            logger,
	}
}

// Add handles POST /internships/add_internship
func (c *InternshipController) Add(ctx *gin.Context) {
	var req dto.AddInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid internship payload")
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	internship, err := c.internshipService.Create(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewInternshipResponse(internship))
}

// GetAll handles GET /internships
func (c *InternshipController) GetAll(ctx *gin.Context) {
	internships, err := c.internshipService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInternshipListResponse(internships))
}

// GetByID handles GET /internships/:id
func (c *InternshipController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	internship, err := c.internshipService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInternshipResponse(internship))
}

// GetByAuthor handles GET /internships/by_author/:id
func (c *InternshipController) GetByAuthor(ctx *gin.Context) {
	authorID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	internships, err := c.internshipService.GetByAuthorID(ctx, authorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInternshipListResponse(internships))
}

// Update handles PUT /internships/:id
func (c *InternshipController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid internship payload")
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	internship, err := c.authzService.AuthorizeInternshipChange(ctx, id,
		middleware.CurrentUserID(ctx), ctx.GetString(middleware.ContextRoleKey))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.internshipService.Update(ctx, internship, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInternshipResponse(updated))
}

// Delete handles DELETE /internships/:id
func (c *InternshipController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	_, err := c.authzService.AuthorizeInternshipChange(ctx, id,
		middleware.CurrentUserID(ctx), ctx.GetString(middleware.ContextRoleKey))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.internshipService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship deleted successfully"))
}

// Flag handles PUT /internships/flag/:id
func (c *InternshipController) Flag(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// Body is optional; a bare request flags without a reason
	var req FlagRequest
	_ = ctx.ShouldBindJSON(&req)

	if err := c.flagService.Flag(ctx, middleware.CurrentUserID(ctx), id, req.Reason); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship flagged successfully"))
}

// Unflag handles PUT /internships/unflag/:id
func (c *InternshipController) Unflag(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.flagService.Unflag(ctx, middleware.CurrentUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship unflagged successfully"))
}

// ClearFlags handles PUT /internships/clear_flags/:id (admin only)
func (c *InternshipController) ClearFlags(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.flagService.ClearFlags(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Flags cleared successfully"))
}

// Favorite handles PUT /internships/favorite/:id
func (c *InternshipController) Favorite(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.favoriteService.Favorite(ctx, middleware.CurrentUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship favorited successfully"))
}

// Unfavorite handles PUT /internships/unfavorite/:id
func (c *InternshipController) Unfavorite(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.favoriteService.Unfavorite(ctx, middleware.CurrentUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship unfavorited successfully"))
}
