package models

import (
	"time"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

// CreateSlotRequest модель запроса на публикацию слота
type CreateSlotRequest struct {
	ProfessionalID int64     // ID профессионала-владельца
	StartsAt       time.Time // Начало интервала
	EndsAt         time.Time // Конец интервала
}

// SlotResponse модель слота в ответе сервиса
type SlotResponse struct {
	ID             int64
	ProfessionalID int64
	StartsAt       time.Time
	EndsAt         time.Time
	Available      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SlotListResponse список слотов
type SlotListResponse struct {
	Items []*SlotResponse
	Total int
}

// FromDomainSlot конвертирует доменную модель в ответ сервиса
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:             s.ID,
		ProfessionalID: s.ProfessionalID,
		StartsAt:       s.StartsAt,
		EndsAt:         s.EndsAt,
		Available:      s.Available,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список доменных моделей в ответ сервиса
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	items := make([]*SlotResponse, 0, len(slots))
	for _, s := range slots {
		items = append(items, FromDomainSlot(s))
	}
	return &SlotListResponse{
		Items: items,
		Total: len(items),
	}
}
