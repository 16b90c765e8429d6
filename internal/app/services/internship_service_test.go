package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/app/models/dto"
	"github.com/internhub/backend/internal/pkg/apperrors"
	"github.com/internhub/backend/internal/pkg/helpers"
)

func futureDate(days int) string {
	return helpers.FormatDate(time.Now().UTC().AddDate(0, 0, days))
}

func TestInternshipService_Create(t *testing.T) {
	period := &models.TimePeriod{ID: 1, Name: "T1"}

	tests := []struct {
		name     string
		deadline string
		wantErr  error
	}{
		{
			name:     "successful creation",
			deadline: futureDate(30),
		},
		{
			name:     "deadline in the past",
			deadline: "2020-01-01",
			wantErr:  apperrors.ErrDeadlineInPast,
		},
		{
			name:     "deadline today is rejected",
			deadline: futureDate(0),
			wantErr:  apperrors.ErrDeadlineInPast,
		},
		{
			name:     "malformed deadline",
			deadline: "01/01/2030",
			wantErr:  apperrors.ErrBadRequest,
		},
	}

	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			internshipRepo := new(MockInternshipRepository)
			timePeriodRepo := new(MockTimePeriodRepository)
			if tt.wantErr == nil {
				timePeriodRepo.On("GetByID", mock.Anything, int64(1)).Return(period, nil)
				internshipRepo.On("Create", mock.Anything, mock.Anything).Return(int64(42), nil).
					Run(func(args mock.Arguments) {
						// The repository writes the database timestamp back
						args.Get(1).(*models.Internship).CreatedAt = createdAt
					})
			}

			service := NewInternshipService(internshipRepo, timePeriodRepo)
			internship, err := service.Create(context.Background(), 5, &dto.AddInternshipRequest{
				Company:      "Initech",
				Position:     "Backend Intern",
				Website:      "https://initech.example",
				Deadline:     tt.deadline,
				TimePeriodID: 1,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(42), internship.ID)
			assert.Equal(t, int64(5), internship.AuthorID)
			assert.Equal(t, createdAt, internship.CreatedAt)
			assert.False(t, internship.Flagged)
			internshipRepo.AssertExpectations(t)
		})
	}
}

func TestInternshipService_Create_UnknownTimePeriod(t *testing.T) {
	internshipRepo := new(MockInternshipRepository)
	timePeriodRepo := new(MockTimePeriodRepository)
	timePeriodRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrTimePeriodNotFound)

	service := NewInternshipService(internshipRepo, timePeriodRepo)
	_, err := service.Create(context.Background(), 5, &dto.AddInternshipRequest{
		Company:      "Initech",
		Position:     "Backend Intern",
		Website:      "https://initech.example",
		Deadline:     futureDate(30),
		TimePeriodID: 99,
	})

	assert.ErrorIs(t, err, apperrors.ErrTimePeriodNotFound)
	internshipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInternshipService_Update(t *testing.T) {
	newExisting := func() *models.Internship {
		return &models.Internship{
			ID:           42,
			Company:      "Initech",
			Position:     "Backend Intern",
			Website:      "https://initech.example",
			AuthorID:     5,
			TimePeriodID: 1,
		}
	}

	t.Run("replaces editable fields", func(t *testing.T) {
		internshipRepo := new(MockInternshipRepository)
		timePeriodRepo := new(MockTimePeriodRepository)
		internshipRepo.On("Update", mock.Anything, mock.MatchedBy(func(i *models.Internship) bool {
			return i.ID == 42 && i.Company == "Globex" && i.AuthorID == 5
		})).Return(nil)

		service := NewInternshipService(internshipRepo, timePeriodRepo)
		updated, err := service.Update(context.Background(), newExisting(), &dto.UpdateInternshipRequest{
			Company:      "Globex",
			Position:     "Backend Intern",
			Website:      "https://globex.example",
			Deadline:     futureDate(60),
			TimePeriodID: 1,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Globex", updated.Company)
		internshipRepo.AssertExpectations(t)
	})

	t.Run("past deadline is accepted on update", func(t *testing.T) {
		internshipRepo := new(MockInternshipRepository)
		timePeriodRepo := new(MockTimePeriodRepository)
		internshipRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		service := NewInternshipService(internshipRepo, timePeriodRepo)
		updated, err := service.Update(context.Background(), newExisting(), &dto.UpdateInternshipRequest{
			Company:      "Initech",
			Position:     "Backend Intern",
			Website:      "https://initech.example",
			Deadline:     "2020-01-01",
			TimePeriodID: 1,
		})

		assert.NoError(t, err)
		assert.Equal(t, "2020-01-01", helpers.FormatDate(updated.Deadline))
		internshipRepo.AssertExpectations(t)
	})

	t.Run("malformed deadline rejected before any write", func(t *testing.T) {
		internshipRepo := new(MockInternshipRepository)
		timePeriodRepo := new(MockTimePeriodRepository)

		service := NewInternshipService(internshipRepo, timePeriodRepo)
		_, err := service.Update(context.Background(), newExisting(), &dto.UpdateInternshipRequest{
			Company:      "Globex",
			Position:     "Backend Intern",
			Website:      "https://globex.example",
			Deadline:     "01/01/2030",
			TimePeriodID: 1,
		})

		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		internshipRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
