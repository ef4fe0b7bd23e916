package get_professional_appointments

import (
	"context"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	"github.com/consultafacil/CF-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByProfessional(ctx context.Context, user *domain.User, professionalID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
