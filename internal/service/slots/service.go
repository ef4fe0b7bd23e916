package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	slotRepo "github.com/consultafacil/CF-SchedulingService/internal/infra/storage/slot"
	"github.com/consultafacil/CF-SchedulingService/internal/service/slots/models"
)

// Service сервис управления слотами (сторона, владеющая слотами)
type Service struct {
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create публикует новый слот профессионала
// Профессионал может публиковать только свои слоты, администратор - любые
func (s *Service) Create(ctx context.Context, user *domain.User, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: professional=%d, start=%s, end=%s by user=%d",
		req.ProfessionalID, req.StartsAt, req.EndsAt, user.ID)

	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if req.StartsAt.IsZero() || req.EndsAt.IsZero() {
		return nil, fmt.Errorf("%w: startsAt and endsAt are required", ErrInvalidInput)
	}

	if !domain.CanManageSlot(user, req.ProfessionalID) {
		s.logger.Warn("CreateSlot: access denied for user=%d to professional=%d", user.ID, req.ProfessionalID)
		return nil, ErrAccessDenied
	}

	slot := &domain.Slot{
		ProfessionalID: req.ProfessionalID,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		Available:      true,
	}

	if !slot.HasValidInterval() {
		s.logger.Warn("CreateSlot: invalid interval start=%s end=%s", req.StartsAt, req.EndsAt)
		return nil, ErrInvalidInterval
	}

	if !slot.StartsAt.After(s.timeProvider.Now()) {
		s.logger.Warn("CreateSlot: slot starts in the past: %s", req.StartsAt)
		return nil, ErrPastSlot
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("CreateSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: successfully created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// List получает слоты профессионала
// При availableOnly=true возвращает только доступные для бронирования
func (s *Service) List(ctx context.Context, professionalID int64, availableOnly bool) (*models.SlotListResponse, error) {
	s.logger.Info("ListSlots: professional=%d, availableOnly=%v", professionalID, availableOnly)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	var (
		list []*domain.Slot
		err  error
	)

	if availableOnly {
		list, err = s.slotRepo.ListAvailableByProfessional(ctx, professionalID)
	} else {
		list, err = s.slotRepo.ListByProfessional(ctx, professionalID)
	}

	if err != nil {
		s.logger.Error("ListSlots: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSlots: successfully fetched %d slots for professional=%d", len(list), professionalID)
	return models.FromDomainSlotList(list), nil
}

// SetAvailability обновляет флаг доступности слота
// Эта операция - поверхность, которую вызывает шлюз удалённого сервиса
// консультаций после бронирования
func (s *Service) SetAvailability(ctx context.Context, user *domain.User, slotID int64, available bool) error {
	s.logger.Info("SetSlotAvailability: slot=%d, available=%v by user=%d", slotID, available, user.ID)

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("SetSlotAvailability: slot id=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("SetSlotAvailability: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	if !domain.CanManageSlot(user, slot.ProfessionalID) {
		s.logger.Warn("SetSlotAvailability: access denied for user=%d to slot id=%d", user.ID, slotID)
		return ErrAccessDenied
	}

	if err := s.slotRepo.SetAvailability(ctx, slotID, available); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("SetSlotAvailability: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetSlotAvailability: slot id=%d now available=%v", slotID, available)
	return nil
}

// Delete удаляет слот
func (s *Service) Delete(ctx context.Context, user *domain.User, slotID int64) error {
	s.logger.Info("DeleteSlot: slot=%d by user=%d", slotID, user.ID)

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("DeleteSlot: slot id=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !domain.CanManageSlot(user, slot.ProfessionalID) {
		s.logger.Warn("DeleteSlot: access denied for user=%d to slot id=%d", user.ID, slotID)
		return ErrAccessDenied
	}

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSlot: successfully deleted slot id=%d", slotID)
	return nil
}
