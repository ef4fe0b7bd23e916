package get_appointment

import (
	"time"

	"github.com/consultafacil/CF-SchedulingService/internal/service/appointments/models"
)

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

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
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
