package create_slot

import (
	"context"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	"github.com/consultafacil/CF-SchedulingService/internal/service/slots/models"
)

type SlotService interface {
	Create(ctx context.Context, user *domain.User, req *models.CreateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
