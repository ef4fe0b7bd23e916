package get_appointment

import (
	"context"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	"github.com/consultafacil/CF-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByID(ctx context.Context, user *domain.User, id int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
