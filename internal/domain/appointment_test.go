package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_WithinCancellationNotice(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		scheduledAt time.Time
		want        bool
	}{
		{
			name:        "25 hours ahead may be cancelled",
			scheduledAt: now.Add(25 * time.Hour),
			want:        true,
		},
		{
			name:        "exactly 24 hours ahead may be cancelled",
			scheduledAt: now.Add(24 * time.Hour),
			want:        true,
		},
		{
			name:        "23 hours ahead is too late",
			scheduledAt: now.Add(23 * time.Hour),
			want:        false,
		},
		{
			name:        "one second short of 24 hours is too late",
			scheduledAt: now.Add(24*time.Hour - time.Second),
			want:        false,
		},
		{
			name:        "appointment in the past is too late",
			scheduledAt: now.Add(-time.Hour),
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{ScheduledAt: tt.scheduledAt}
			assert.Equal(t, tt.want, a.WithinCancellationNotice(now))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusScheduled))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.True(t, ValidStatus(StatusCanceled))
	assert.False(t, ValidStatus(AppointmentStatus("unknown")))
}
