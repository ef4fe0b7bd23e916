package models

import (
	"time"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

// AppointmentResponse модель консультации в ответе сервиса
type AppointmentResponse struct {
	ID             int64
	PatientID      int64
	ProfessionalID int64
	ScheduledAt    time.Time
	Status         string
	Observations   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AppointmentListResponse список консультаций
type AppointmentListResponse struct {
	Items []*AppointmentResponse
	Total int
}

// FromDomainAppointment конвертирует доменную модель в ответ сервиса
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             a.ID,
		PatientID:      a.PatientID,
		ProfessionalID: a.ProfessionalID,
		ScheduledAt:    a.ScheduledAt,
		Status:         string(a.Status),
		Observations:   a.Observations,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей в ответ сервиса
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	items := make([]*AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		items = append(items, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{
		Items: items,
		Total: len(items),
	}
}
