package get_patient_appointments

import (
	"context"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	"github.com/consultafacil/CF-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByPatient(ctx context.Context, user *domain.User, patientID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
