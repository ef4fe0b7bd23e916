package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	"github.com/consultafacil/CF-SchedulingService/internal/infra/lock"
	appointmentRepo "github.com/consultafacil/CF-SchedulingService/internal/infra/storage/appointment"
	"github.com/consultafacil/CF-SchedulingService/internal/integrations/slotservice"
)

// UseCase use case создания консультации - сердце движка бронирования.
//
// Порядок гарантий:
//  1. конфликт: у профессионала не может быть двух консультаций на один момент;
//  2. доступность: момент должен попадать в доступный слот профессионала
//     (полуоткрытый интервал, t == концу слота не считается);
//  3. запись консультации - авторитетный факт бронирования;
//  4. перевод покрывающего слота в недоступные - побочный эффект: его сбой
//     логируется, но созданную консультацию не откатывает; расхождение флага
//     слота устраняется внешней сверкой.
//
// Конкурентные бронирования одного (профессионал, момент) отсекаются
// уникальным ограничением в БД консультаций; поверх него local-режим
// выполняет check-then-act в сериализуемой транзакции, remote-режим
// сериализует бронирования профессионала внешним замком.
type UseCase struct {
	appointmentRepo AppointmentRepository
	slotProvider    SlotProvider
	txManager       TransactionManager
	locker          ProfessionalLocker
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	slotProvider SlotProvider,
	txManager TransactionManager,
	locker ProfessionalLocker,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		slotProvider:    slotProvider,
		txManager:       txManager,
		locker:          locker,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания консультации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: patient=%d, professional=%d, time=%s",
		req.PatientID, req.ProfessionalID, req.ScheduledAt)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Момент консультации должен быть строго в будущем
	now := uc.timeProvider.Now()
	if err := validateFutureTime(req.ScheduledAt, now); err != nil {
		uc.logger.Warn("CreateAppointment: scheduled time %s is not in the future", req.ScheduledAt)
		return nil, err
	}

	var (
		result       *domain.Appointment
		coveringSlot *domain.Slot
	)

	// 3. Check-then-act под замком профессионала и в сериализуемой транзакции
	err := uc.locker.WithProfessionalLock(ctx, req.ProfessionalID, func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// 3.1. Проверка конфликта: консультация на тот же момент
			exists, err := uc.appointmentRepo.ExistsByProfessionalAndTime(txCtx, req.ProfessionalID, req.ScheduledAt)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to check conflict: %v", err)
				return fmt.Errorf("%w: failed to check conflict: %v", ErrInternal, err)
			}
			if exists {
				uc.logger.Warn("CreateAppointment: conflict for professional=%d at %s",
					req.ProfessionalID, req.ScheduledAt)
				return ErrSchedulingConflict
			}

			// 3.2. Проверка доступности: момент должен покрываться доступным слотом
			slots, err := uc.slotProvider.ListAvailable(txCtx, req.ProfessionalID)
			if err != nil {
				if errors.Is(err, slotservice.ErrServiceUnavailable) {
					// Сервис слотов недоступен: осознанно деградируем до
					// "нет доступных слотов" - запись консультаций остаётся
					// источником истины для конфликтов
					uc.logger.Error("CreateAppointment: slot service unavailable, degrading to no slots: %v", err)
					return ErrSlotUnavailable
				}
				uc.logger.Error("CreateAppointment: failed to list available slots: %v", err)
				return fmt.Errorf("%w: failed to list available slots: %v", ErrInternal, err)
			}

			coveringSlot = domain.FindCoveringSlot(slots, req.ScheduledAt)
			if coveringSlot == nil {
				uc.logger.Warn("CreateAppointment: no available slot covers %s for professional=%d",
					req.ScheduledAt, req.ProfessionalID)
				return ErrSlotUnavailable
			}

			// 3.3. Создаем консультацию
			appointment := &domain.Appointment{
				PatientID:      req.PatientID,
				ProfessionalID: req.ProfessionalID,
				ScheduledAt:    req.ScheduledAt,
				Status:         domain.StatusScheduled,
				Observations:   req.Observations,
			}

			created, err := uc.appointmentRepo.Create(txCtx, appointment)
			if err != nil {
				if errors.Is(err, appointmentRepo.ErrAppointmentConflict) {
					// Конкурент успел первым - уникальный индекс сработал
					uc.logger.Warn("CreateAppointment: unique constraint hit for professional=%d at %s",
						req.ProfessionalID, req.ScheduledAt)
					return ErrSchedulingConflict
				}
				uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
				return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
			}

			result = created
			return nil
		})
	})

	if err != nil {
		if errors.Is(err, lock.ErrLockNotAcquired) {
			uc.logger.Warn("CreateAppointment: professional=%d lock busy", req.ProfessionalID)
			return nil, ErrConcurrentBooking
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 4. Переводим покрывающий слот в недоступные.
	// Сбой здесь не откатывает бронирование: слот остаётся помеченным
	// доступным до внешней сверки, консультация - в силе.
	if err := uc.slotProvider.SetAvailability(ctx, coveringSlot.ID, false); err != nil {
		uc.logger.Error("CreateAppointment: failed to mark slot id=%d unavailable for appointment id=%d: %v",
			coveringSlot.ID, result.ID, err)
	} else {
		uc.logger.Info("CreateAppointment: slot id=%d marked unavailable", coveringSlot.ID)
	}

	return &Response{
		ID:             result.ID,
		PatientID:      result.PatientID,
		ProfessionalID: result.ProfessionalID,
		ScheduledAt:    result.ScheduledAt,
		Status:         string(result.Status),
		Observations:   result.Observations,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
