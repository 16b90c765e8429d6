package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/apperrors"
	"github.com/internhub/backend/internal/pkg/filestorage"
	"github.com/internhub/backend/internal/pkg/logger"
)

// Storage prefixes per upload kind
const (
	profilePicturePrefix = "profile_pictures"
	cvPrefix             = "cvs"
	companyPhotoPrefix   = "company_photos"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadService handles user and internship file uploads
type UploadService struct {
	userRepo       UserRepository
	internshipRepo InternshipRepository
	storage        filestorage.ObjectStorage
}

// NewUploadService creates a new UploadService
func NewUploadService(userRepo UserRepository, internshipRepo InternshipRepository, storage filestorage.ObjectStorage) *UploadService {
	return &UploadService{
		userRepo:       userRepo,
		internshipRepo: internshipRepo,
		storage:        storage,
	}
}

func isImageFile(fileHeader *multipart.FileHeader) bool {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	return imageExtensions[ext]
}

func isPDFFile(fileHeader *multipart.FileHeader) bool {
	return strings.ToLower(filepath.Ext(fileHeader.Filename)) == ".pdf"
}

func (s *UploadService) save(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (string, error) {
	url, err := s.storage.SaveFile(ctx, fileHeader, prefix)
	if err != nil {
		return "", &apperrors.CustomError{Err: apperrors.ErrUpstreamStorage, Message: "File upload failed"}
	}
	return url, nil
}

// removeOld deletes a replaced file, logging failures instead of failing the
// request. The database already points at the new file.
func (s *UploadService) removeOld(ctx context.Context, oldURL *string) {
	if oldURL == nil || *oldURL == "" {
		return
	}
	if err := s.storage.DeleteFile(ctx, *oldURL); err != nil {
		logger.Warn().Err(err).Str("url", *oldURL).Msg("Failed to delete replaced file")
	}
}

// UploadProfilePicture stores a new profile picture for the user and
// replaces the previous one.
func (s *UploadService) UploadProfilePicture(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error) {
	if !isImageFile(fileHeader) {
		return "", apperrors.NewBadRequestError("Profile picture must be an image file")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	url, err := s.save(ctx, fileHeader, profilePicturePrefix)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateProfilePictureLink(ctx, userID, &url); err != nil {
		s.removeOld(ctx, &url)
		return "", err
	}

	s.removeOld(ctx, user.ProfilePictureLink)
	return url, nil
}

// remove deletes a stored file and surfaces storage failures. Used by the
// explicit delete endpoints, where the link must only be cleared once the
// backend confirms the delete.
func (s *UploadService) remove(ctx context.Context, fileURL *string) error {
	if fileURL == nil || *fileURL == "" {
		return nil
	}
	if err := s.storage.DeleteFile(ctx, *fileURL); err != nil {
		return &apperrors.CustomError{Err: apperrors.ErrUpstreamStorage, Message: "File deletion failed"}
	}
	return nil
}

// DeleteProfilePicture removes the user's profile picture
func (s *UploadService) DeleteProfilePicture(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.remove(ctx, user.ProfilePictureLink); err != nil {
		return err
	}

	return s.userRepo.UpdateProfilePictureLink(ctx, userID, nil)
}

// UploadCV stores a new CV for the user and replaces the previous one
func (s *UploadService) UploadCV(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error) {
	if !isPDFFile(fileHeader) {
		return "", apperrors.NewBadRequestError("CV must be a PDF file")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	url, err := s.save(ctx, fileHeader, cvPrefix)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateCVLink(ctx, userID, &url); err != nil {
		s.removeOld(ctx, &url)
		return "", err
	}

	s.removeOld(ctx, user.CVLink)
	return url, nil
}

// DeleteCV removes the user's CV
func (s *UploadService) DeleteCV(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.remove(ctx, user.CVLink); err != nil {
		return err
	}

	return s.userRepo.UpdateCVLink(ctx, userID, nil)
}

// UploadCompanyPhoto stores a company photo on an internship the caller is
// already authorized for, replacing the previous one.
func (s *UploadService) UploadCompanyPhoto(ctx context.Context, internship *models.Internship, fileHeader *multipart.FileHeader) (string, error) {
	if !isImageFile(fileHeader) {
		return "", apperrors.NewBadRequestError("Company photo must be an image file")
	}

	url, err := s.save(ctx, fileHeader, companyPhotoPrefix)
	if err != nil {
		return "", err
	}

	if err := s.internshipRepo.UpdateCompanyPhotoLink(ctx, internship.ID, &url); err != nil {
		s.removeOld(ctx, &url)
		return "", err
	}

	s.removeOld(ctx, internship.CompanyPhotoLink)
	return url, nil
}

// DeleteCompanyPhoto removes the company photo from an internship
func (s *UploadService) DeleteCompanyPhoto(ctx context.Context, internship *models.Internship) error {
	if err := s.remove(ctx, internship.CompanyPhotoLink); err != nil {
		return err
	}

	return s.internshipRepo.UpdateCompanyPhotoLink(ctx, internship.ID, nil)
}
