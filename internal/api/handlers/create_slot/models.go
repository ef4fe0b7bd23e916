package create_slot

import (
	"time"

	"github.com/consultafacil/CF-SchedulingService/internal/service/slots/models"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	ProfessionalID int64  `json:"professionalId"`
	StartsAt       string `json:"startsAt"` // RFC 3339
	EndsAt         string `json:"endsAt"`   // RFC 3339
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID             int64  `json:"id"`
	ProfessionalID int64  `json:"professionalId"`
	StartsAt       string `json:"startsAt"`
	EndsAt         string `json:"endsAt"`
	Available      bool   `json:"available"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSlotRequest) ToServiceRequest() (*models.CreateSlotRequest, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, err
	}

	endsAt, err := time.Parse(time.RFC3339, r.EndsAt)
	if err != nil {
		return nil, err
	}

	return &models.CreateSlotRequest{
		ProfessionalID: r.ProfessionalID,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SlotResponse) *SlotResponse {
	return &SlotResponse{
		ID:             resp.ID,
		ProfessionalID: resp.ProfessionalID,
		StartsAt:       resp.StartsAt.Format(time.RFC3339),
		EndsAt:         resp.EndsAt.Format(time.RFC3339),
		Available:      resp.Available,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
