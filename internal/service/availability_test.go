package service_test

import (
	"testing"
	"time"

	"felka-transportes-backend/internal/database/models"
	apperrors "felka-transportes-backend/internal/errors"
	"felka-transportes-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestParseSlotStart(t *testing.T) {
	t.Run("valid date and time", func(t *testing.T) {
		start, err := service.ParseSlotStart("2026-09-14", "09:00")
		assert.NoError(t, err)
		assert.Equal(t, 2026, start.Year())
		assert.Equal(t, time.September, start.Month())
		assert.Equal(t, 14, start.Day())
		assert.Equal(t, 9, start.Hour())
		assert.Equal(t, 0, start.Minute())
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := service.ParseSlotStart("14/09/2026", "09:00")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat)
	})

	t.Run("invalid time slot", func(t *testing.T) {
		_, err := service.ParseSlotStart("2026-09-14", "9am")
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeSlot)
	})
}

func TestIsBookable(t *testing.T) {
	tests := []struct {
		name     string
		slot     models.ScheduleSlot
		expected bool
	}{
		{
			name:     "available with spare capacity",
			slot:     models.ScheduleSlot{IsAvailable: true, CurrentBookings: 0, MaxCapacity: 5},
			expected: true,
		},
		{
			name:     "one below capacity",
			slot:     models.ScheduleSlot{IsAvailable: true, CurrentBookings: 4, MaxCapacity: 5},
			expected: true,
		},
		{
			name:     "at capacity",
			slot:     models.ScheduleSlot{IsAvailable: true, CurrentBookings: 5, MaxCapacity: 5},
			expected: false,
		},
		{
			name:     "blocked with spare capacity",
			slot:     models.ScheduleSlot{IsAvailable: false, CurrentBookings: 0, MaxCapacity: 5},
			expected: false,
		},
		{
			name:     "blocked and full",
			slot:     models.ScheduleSlot{IsAvailable: false, CurrentBookings: 5, MaxCapacity: 5},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.IsBookable(&tt.slot))
		})
	}
}

func TestIsCancellable(t *testing.T) {
	window := 3 * time.Hour
	now := time.Date(2026, time.September, 14, 6, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		start    time.Time
		expected bool
	}{
		{
			name:     "well before the window",
			start:    now.Add(24 * time.Hour),
			expected: true,
		},
		{
			name:     "exactly at the window boundary",
			start:    now.Add(3 * time.Hour),
			expected: true,
		},
		{
			name:     "one second inside the window",
			start:    now.Add(3*time.Hour - time.Second),
			expected: false,
		},
		{
			name:     "slot already started",
			start:    now,
			expected: false,
		},
		{
			name:     "slot in the past",
			start:    now.Add(-2 * time.Hour),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.IsCancellable(tt.start, now, window))
		})
	}
}
