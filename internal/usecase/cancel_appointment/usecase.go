package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	appointmentRepo "github.com/consultafacil/CF-SchedulingService/internal/infra/storage/appointment"
)

// UseCase use case отмены консультации.
//
// Отмена - физическое удаление записи: повторная отмена того же ID даёт
// "не найдено", а не тихий no-op. Покрывавший слот обратно в доступные
// НЕ переводится: после бронирования слоты могли быть перенарезаны, и
// выбор "какой слот открыть" без внешней сверки небезопасен.
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case отмены консультации
func (uc *UseCase) Execute(ctx context.Context, user *domain.User, appointmentID int64) error {
	uc.logger.Info("CancelAppointment: id=%d by user=%d", appointmentID, user.ID)

	// 1. Загружаем консультацию
	appointment, err := uc.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CancelAppointment: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		uc.logger.Error("CancelAppointment: failed to get appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 2. Отменять может пациент, профессионал консультации или администратор
	if !domain.CanCancelAppointment(user, appointment) {
		uc.logger.Warn("CancelAppointment: access denied for user=%d to appointment id=%d",
			user.ID, appointmentID)
		return ErrAccessDenied
	}

	// 3. Окно отмены: не позже чем за 24 часа до консультации
	now := uc.timeProvider.Now()
	if !appointment.WithinCancellationNotice(now) {
		uc.logger.Warn("CancelAppointment: too late to cancel id=%d, scheduled at %s",
			appointmentID, appointment.ScheduledAt)
		return ErrTooLateToCancel
	}

	// 4. Удаляем консультацию
	if err := uc.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CancelAppointment: appointment id=%d disappeared during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		uc.logger.Error("CancelAppointment: failed to delete appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelAppointment: successfully cancelled appointment id=%d", appointmentID)
	return nil
}
