package slots

import (
	"context"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

// Provider локальная реализация стратегии доступа к слотам для движка
// бронирования. Обращается к репозиторию напрямую, без проверок прав:
// движок меняет доступность слота от имени системы, а не пользователя.
// Зеркальная реализация для remote-режима - slotservice.Client.
type Provider struct {
	repo SlotRepository
}

// NewProvider создает локальный провайдер слотов
func NewProvider(repo SlotRepository) *Provider {
	return &Provider{repo: repo}
}

// ListAvailable возвращает все доступные слоты профессионала
func (p *Provider) ListAvailable(ctx context.Context, professionalID int64) ([]*domain.Slot, error) {
	return p.repo.ListAvailableByProfessional(ctx, professionalID)
}

// SetAvailability обновляет флаг доступности слота
func (p *Provider) SetAvailability(ctx context.Context, slotID int64, available bool) error {
	return p.repo.SetAvailability(ctx, slotID, available)
}
