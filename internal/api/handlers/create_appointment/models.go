package create_appointment

import (
	"time"

	createAppointment "github.com/consultafacil/CF-SchedulingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	ScheduledAt    string  `json:"scheduledAt"` // RFC 3339, например "2026-09-15T10:00:00Z"
	Observations   *string `json:"observations,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64   `json:"id"`
	PatientID      int64   `json:"patientId"`
	ProfessionalID int64   `json:"professionalId"`
	ScheduledAt    string  `json:"scheduledAt"`
	Status         string  `json:"status"`
	Observations   *string `json:"observations,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пациент берется из аутентифицированной личности, а не из тела запроса.
func (r *CreateAppointmentRequest) ToUseCaseRequest(patientID int64) (*createAppointment.Request, error) {
	scheduledAt, err := time.Parse(time.RFC3339, r.ScheduledAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		PatientID:      patientID,
		ProfessionalID: r.ProfessionalID,
		ScheduledAt:    scheduledAt,
		Observations:   r.Observations,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID,
		PatientID:      resp.PatientID,
		ProfessionalID: resp.ProfessionalID,
		ScheduledAt:    resp.ScheduledAt.Format(time.RFC3339),
		Status:         resp.Status,
		Observations:   resp.Observations,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
