package get_professional_slots

import (
	"context"

	"github.com/consultafacil/CF-SchedulingService/internal/service/slots/models"
)

type SlotService interface {
	List(ctx context.Context, professionalID int64, availableOnly bool) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
