package get_patient_appointments

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

// AppointmentListResponse HTTP response model для списка консультаций
type AppointmentListResponse struct {
	Items []*AppointmentResponse `json:"items"`
	Total int                    `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	items := make([]*AppointmentResponse, 0, len(resp.Items))
	for _, a := range resp.Items {
		items = append(items, &AppointmentResponse{
			ID:             a.ID,
			PatientID:      a.PatientID,
			ProfessionalID: a.ProfessionalID,
			ScheduledAt:    a.ScheduledAt.Format(time.RFC3339),
			Status:         a.Status,
			Observations:   a.Observations,
			CreatedAt:      a.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
		})
	}
	return &AppointmentListResponse{
		Items: items,
		Total: resp.Total,
	}
}
