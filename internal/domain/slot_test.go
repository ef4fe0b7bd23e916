package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_Covers(t *testing.T) {
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC)
	slot := &Slot{ID: 1, ProfessionalID: 7, StartsAt: start, EndsAt: end, Available: true}

	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{
			name:    "instant equals start",
			instant: start,
			want:    true,
		},
		{
			name:    "instant strictly inside",
			instant: start.Add(30 * time.Minute),
			want:    true,
		},
		{
			name:    "instant one second before end",
			instant: end.Add(-time.Second),
			want:    true,
		},
		{
			name:    "instant equals end is not covered",
			instant: end,
			want:    false,
		},
		{
			name:    "instant before start",
			instant: start.Add(-time.Second),
			want:    false,
		},
		{
			name:    "instant after end",
			instant: end.Add(time.Hour),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Covers(tt.instant))
		})
	}
}

func TestSlot_HasValidInterval(t *testing.T) {
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	valid := &Slot{StartsAt: start, EndsAt: start.Add(time.Hour)}
	assert.True(t, valid.HasValidInterval())

	empty := &Slot{StartsAt: start, EndsAt: start}
	assert.False(t, empty.HasValidInterval())

	inverted := &Slot{StartsAt: start, EndsAt: start.Add(-time.Hour)}
	assert.False(t, inverted.HasValidInterval())
}

func TestFindCoveringSlot(t *testing.T) {
	base := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)

	slots := []*Slot{
		{ID: 1, StartsAt: base, EndsAt: base.Add(time.Hour)},
		{ID: 2, StartsAt: base.Add(time.Hour), EndsAt: base.Add(2 * time.Hour)},
		// Пересекается с первым: при совпадении побеждает первый в списке
		{ID: 3, StartsAt: base, EndsAt: base.Add(2 * time.Hour)},
	}

	t.Run("returns first covering slot", func(t *testing.T) {
		found := FindCoveringSlot(slots, base.Add(30*time.Minute))
		require.NotNil(t, found)
		assert.Equal(t, int64(1), found.ID)
	})

	t.Run("boundary between slots belongs to the later one", func(t *testing.T) {
		found := FindCoveringSlot(slots[:2], base.Add(time.Hour))
		require.NotNil(t, found)
		assert.Equal(t, int64(2), found.ID)
	})

	t.Run("returns nil when no slot covers", func(t *testing.T) {
		assert.Nil(t, FindCoveringSlot(slots, base.Add(3*time.Hour)))
	})

	t.Run("returns nil for empty list", func(t *testing.T) {
		assert.Nil(t, FindCoveringSlot(nil, base))
	})
}
