package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appauth "github.com/internhub/backend/internal/app/auth"
	"github.com/internhub/backend/internal/app/models/dto"
	"github.com/internhub/backend/internal/app/services"
	"github.com/internhub/backend/internal/middleware"
	"github.com/internhub/backend/internal/pkg/apperrors"
)

// UploadController handles file upload endpoints
type UploadController struct {
	uploadService *services.UploadService
	authzService  *appauth.AuthorizationService
	logger        zerolog.Logger
}

// NewUploadController creates a new UploadController
func NewUploadController(uploadService *services.UploadService, authzService *appauth.AuthorizationService, logger zerolog.Logger) *UploadController {
	return &UploadController{
		uploadService: uploadService,
		authzService:  authzService,
		logger:        logger,
	}
}

func formFile(ctx *gin.Context) (*multipart.FileHeader, bool) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("No file provided"))
		return nil, false
	}
	return fileHeader, true
}

// UploadProfilePicture handles PUT /upload/profile_picture
func (c *UploadController) UploadProfilePicture(ctx *gin.Context) {
	fileHeader, ok := formFile(ctx)
	if !ok {
		return
	}

	url, err := c.uploadService.UploadProfilePicture(ctx, middleware.CurrentUserID(ctx), fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Profile picture uploaded successfully", "url": url})
}

// DeleteProfilePicture handles DELETE /upload/profile_picture
func (c *UploadController) DeleteProfilePicture(ctx *gin.Context) {
	if err := c.uploadService.DeleteProfilePicture(ctx, middleware.CurrentUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Profile picture deleted successfully"))
}

// UploadCV handles PUT /upload/cv
func (c *UploadController) UploadCV(ctx *gin.Context) {
	fileHeader, ok := formFile(ctx)
	if !ok {
		return
	}

	url, err := c.uploadService.UploadCV(ctx, middleware.CurrentUserID(ctx), fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "CV uploaded successfully", "url": url})
}

// DeleteCV handles DELETE /upload/cv
func (c *UploadController) DeleteCV(ctx *gin.Context) {
	if err := c.uploadService.DeleteCV(ctx, middleware.CurrentUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("CV deleted successfully"))
}

// UploadCompanyPhoto handles PUT /upload/company_photo/:id
func (c *UploadController) UploadCompanyPhoto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, ok := formFile(ctx)
	if !ok {
		return
	}

	internship, err := c.authzService.AuthorizeInternshipChange(ctx, id,
		middleware.CurrentUserID(ctx), ctx.GetString(middleware.ContextRoleKey))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	url, err := c.uploadService.UploadCompanyPhoto(ctx, internship, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Company photo uploaded successfully", "url": url})
}

// DeleteCompanyPhoto handles DELETE /upload/company_photo/:id
func (c *UploadController) DeleteCompanyPhoto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	internship, err := c.authzService.AuthorizeInternshipChange(ctx, id,
		middleware.CurrentUserID(ctx), ctx.GetString(middleware.ContextRoleKey))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.uploadService.DeleteCompanyPhoto(ctx, internship); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Company photo deleted successfully"))
}
