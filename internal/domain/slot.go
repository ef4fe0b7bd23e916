package domain

import "time"

// Slot represents a professional-published open interval of bookable time
type Slot struct {
	ID             int64
	ProfessionalID int64
	StartsAt       time.Time
	EndsAt         time.Time
	Available      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers returns true if the instant t falls within the slot's half-open
// interval: t == StartsAt, or StartsAt < t < EndsAt.
// t == EndsAt is NOT covered.
func (s *Slot) Covers(t time.Time) bool {
	return t.Equal(s.StartsAt) || (t.After(s.StartsAt) && t.Before(s.EndsAt))
}

// HasValidInterval returns true if the slot interval is well-formed (start < end)
func (s *Slot) HasValidInterval() bool {
	return s.StartsAt.Before(s.EndsAt)
}

// FindCoveringSlot returns the first slot whose half-open interval covers t,
// or nil if none does. Slots are checked in the order given.
func FindCoveringSlot(slots []*Slot, t time.Time) *Slot {
	for _, slot := range slots {
		if slot.Covers(t) {
			return slot
		}
	}
	return nil
}
