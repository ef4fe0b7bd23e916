package delete_slot

import (
	"context"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

type SlotService interface {
	Delete(ctx context.Context, user *domain.User, slotID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
