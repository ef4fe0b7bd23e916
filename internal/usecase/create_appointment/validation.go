package create_appointment

import (
	"fmt"
	"time"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	if req.Observations != nil && len([]rune(*req.Observations)) > domain.MaxObservationsLength {
		return fmt.Errorf("%w: observations must be at most %d characters",
			ErrInvalidInput, domain.MaxObservationsLength)
	}

	return nil
}

// validateFutureTime проверяет, что момент консультации строго в будущем.
// Валидация выше по стеку тоже это проверяет, но движок обязан отклонять
// прошедшее время и сам.
func validateFutureTime(scheduledAt, now time.Time) error {
	if !scheduledAt.After(now) {
		return ErrPastTime
	}
	return nil
}
