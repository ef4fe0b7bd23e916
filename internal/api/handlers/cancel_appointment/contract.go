package cancel_appointment

import (
	"context"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

type CancelAppointmentUseCase interface {
	Execute(ctx context.Context, user *domain.User, appointmentID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
