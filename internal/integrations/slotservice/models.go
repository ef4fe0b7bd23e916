package slotservice

import (
	"time"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

// Slot модель слота из сервиса слотов
type Slot struct {
	ID             int64     `json:"id"`
	ProfessionalID int64     `json:"professionalId"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
	Available      bool      `json:"available"`
}

// ToDomain конвертирует модель клиента в доменную модель
func (s *Slot) ToDomain() *domain.Slot {
	return &domain.Slot{
		ID:             s.ID,
		ProfessionalID: s.ProfessionalID,
		StartsAt:       s.StartsAt,
		EndsAt:         s.EndsAt,
		Available:      s.Available,
	}
}

// SlotListResponse страница слотов от сервиса слотов
type SlotListResponse struct {
	Items   []Slot `json:"items"`
	HasMore bool   `json:"hasMore"`
}

// SetAvailabilityRequest тело запроса на обновление доступности слота
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// ErrorResponse модель ошибки от сервиса слотов
type ErrorResponse struct {
	Codigo  string `json:"codigo"`
	Message string `json:"message"`
}
