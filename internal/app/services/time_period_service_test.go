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
)

func TestTimePeriodService_Add(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantErr   error
	}{
		{
			name:      "successful creation",
			startDate: "2027-01-06",
			endDate:   "2027-04-10",
		},
		{
			name:      "end before start",
			startDate: "2027-04-10",
			endDate:   "2027-01-06",
			wantErr:   apperrors.ErrBadRequest,
		},
		{
			name:      "malformed start date",
			startDate: "06.01.2027",
			endDate:   "2027-04-10",
			wantErr:   apperrors.ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timePeriodRepo := new(MockTimePeriodRepository)
			if tt.wantErr == nil {
				timePeriodRepo.On("Create", mock.Anything, mock.Anything).Return(int64(3), nil)
			}

			service := NewTimePeriodService(timePeriodRepo)
			period, err := service.Add(context.Background(), &dto.AddTimePeriodRequest{
				StartDate: tt.startDate,
				EndDate:   tt.endDate,
				Name:      "T2 2026-2027",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				timePeriodRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(3), period.ID)
		})
	}
}

func TestTimePeriodService_GetValid(t *testing.T) {
	now := time.Now().UTC()
	past := &models.TimePeriod{ID: 1, Name: "past", StartDate: now.AddDate(0, 0, -30), EndDate: now.AddDate(0, 0, -1)}
	current := &models.TimePeriod{ID: 2, Name: "current", StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 60)}
	upcoming := &models.TimePeriod{ID: 3, Name: "upcoming", StartDate: now.AddDate(0, 0, 30), EndDate: now.AddDate(0, 0, 120)}

	timePeriodRepo := new(MockTimePeriodRepository)
	timePeriodRepo.On("GetAll", mock.Anything).Return([]*models.TimePeriod{past, current, upcoming}, nil)

	service := NewTimePeriodService(timePeriodRepo)

	// Only periods that have not started yet are selectable
	valid, err := service.GetValid(context.Background())
	assert.NoError(t, err)
	assert.Len(t, valid, 1)
	assert.Equal(t, int64(3), valid[0].ID)

	all, err := service.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}
