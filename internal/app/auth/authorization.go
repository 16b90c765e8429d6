package auth

import (
	"context"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/apperrors"
)

// InternshipGetter loads internships for authorization decisions
type InternshipGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
}

// AuthorizationService decides who may change what. Existence is always
// checked before authorization, so a missing resource yields not-found
// rather than leaking a permission error.
type AuthorizationService struct {
	internships InternshipGetter
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(internships InternshipGetter) *AuthorizationService {
	return &AuthorizationService{
		internships: internships,
	}
}

// AuthorizeInternshipChange loads the internship and verifies the actor may
// modify it. Authors can change their own listings; admins can change any.
func (s *AuthorizationService) AuthorizeInternshipChange(ctx context.Context, internshipID, actorID int64, actorRole string) (*models.Internship, error) {
	internship, err := s.internships.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}

	if actorRole != string(models.RoleAdmin) && internship.AuthorID != actorID {
		return nil, apperrors.ErrPermissionDenied
	}

	return internship, nil
}
