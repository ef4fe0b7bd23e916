package appointments

import (
	"context"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория консультаций
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByPatient(ctx context.Context, patientID int64) ([]*domain.Appointment, error)
	GetByPatientAndProfessional(ctx context.Context, patientID, professionalID int64) ([]*domain.Appointment, error)
	GetByProfessional(ctx context.Context, professionalID int64) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
