package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/pkg/apperrors"
)

type mockInternshipGetter struct {
	mock.Mock
}

func (m *mockInternshipGetter) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Internship), args.Error(1)
}

func TestAuthorizeInternshipChange(t *testing.T) {
	internship := &models.Internship{ID: 42, AuthorID: 5}

	tests := []struct {
		name      string
		actorID   int64
		actorRole string
		wantErr   error
	}{
		{
			name:      "author may modify their own listing",
			actorID:   5,
			actorRole: string(models.RoleStudent),
		},
		{
			name:      "admin may modify any listing",
			actorID:   1,
			actorRole: string(models.RoleAdmin),
		},
		{
			name:      "other users are denied",
			actorID:   8,
			actorRole: string(models.RoleStudent),
			wantErr:   apperrors.ErrPermissionDenied,
		},
		{
			name:      "instructors are not exempt",
			actorID:   8,
			actorRole: string(models.RoleInstructor),
			wantErr:   apperrors.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getter := new(mockInternshipGetter)
			getter.On("GetByID", mock.Anything, int64(42)).Return(internship, nil)

			service := NewAuthorizationService(getter)
			got, err := service.AuthorizeInternshipChange(context.Background(), 42, tt.actorID, tt.actorRole)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, internship, got)
			}
		})
	}
}

// A missing listing reads as not-found for everyone, including callers who
// would not have been authorized anyway.
func TestAuthorizeInternshipChange_MissingListing(t *testing.T) {
	getter := new(mockInternshipGetter)
	getter.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrInternshipNotFound)

	service := NewAuthorizationService(getter)
	_, err := service.AuthorizeInternshipChange(context.Background(), 99, 8, string(models.RoleStudent))

	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrPermissionDenied)
}
