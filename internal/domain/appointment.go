package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// Appointment represents a confirmed booking of one instant within a slot,
// linking one patient and one professional
type Appointment struct {
	ID             int64
	PatientID      int64
	ProfessionalID int64
	ScheduledAt    time.Time // момент консультации, всегда внутри какого-то слота
	Status         AppointmentStatus
	Observations   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the appointment is still in the scheduled state
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// WithinCancellationNotice returns true if the appointment may still be
// cancelled at the given instant (at least 24h before the scheduled time)
func (a *Appointment) WithinCancellationNotice(now time.Time) bool {
	return !a.ScheduledAt.Before(now.Add(CancellationNotice))
}

// ValidStatus returns true if s is a known appointment status
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}
