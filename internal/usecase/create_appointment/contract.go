package create_appointment

import (
	"context"
	"time"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория консультаций
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	ExistsByProfessionalAndTime(ctx context.Context, professionalID int64, at time.Time) (bool, error)
}

// SlotProvider стратегия доступа к слотам: {listAvailable, setAvailability}.
// Локальная реализация - slots.Provider поверх репозитория,
// удалённая - slotservice.Client поверх HTTP.
type SlotProvider interface {
	ListAvailable(ctx context.Context, professionalID int64) ([]*domain.Slot, error)
	SetAvailability(ctx context.Context, slotID int64, available bool) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProfessionalLocker сериализует бронирования одного профессионала
// (внешний замок для remote-режима, заглушка для local-режима)
type ProfessionalLocker interface {
	WithProfessionalLock(ctx context.Context, professionalID int64, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
