package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimePeriodIsValid(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		startDate time.Time
		want      bool
	}{
		{"starts tomorrow", time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), true},
		{"starts today", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"already started", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := &TimePeriod{StartDate: tt.startDate}
			assert.Equal(t, tt.want, period.IsValid(now))
		})
	}
}
