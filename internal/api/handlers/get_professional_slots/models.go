package get_professional_slots

import (
	"time"

	"github.com/consultafacil/CF-SchedulingService/internal/service/slots/models"
)

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

// SlotListResponse HTTP response model для списка слотов
type SlotListResponse struct {
	Items []*SlotResponse `json:"items"`
	Total int             `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SlotListResponse) *SlotListResponse {
	items := make([]*SlotResponse, 0, len(resp.Items))
	for _, s := range resp.Items {
		items = append(items, &SlotResponse{
			ID:             s.ID,
			ProfessionalID: s.ProfessionalID,
			StartsAt:       s.StartsAt.Format(time.RFC3339),
			EndsAt:         s.EndsAt.Format(time.RFC3339),
			Available:      s.Available,
			CreatedAt:      s.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
		})
	}
	return &SlotListResponse{
		Items: items,
		Total: resp.Total,
	}
}
