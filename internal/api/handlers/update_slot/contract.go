package update_slot

import (
	"context"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

type SlotService interface {
	SetAvailability(ctx context.Context, user *domain.User, slotID int64, available bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
