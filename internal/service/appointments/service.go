package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	appointmentRepo "github.com/consultafacil/CF-SchedulingService/internal/infra/storage/appointment"
	"github.com/consultafacil/CF-SchedulingService/internal/service/appointments/models"
)

// Service сервис чтения консультаций с проверкой прав доступа
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса консультаций
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает консультацию по ID
// Доступна пациенту, профессионалу этой консультации и администратору
func (s *Service) GetByID(ctx context.Context, user *domain.User, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, user.ID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !domain.CanViewAppointment(user, appointment) {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", user.ID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetByPatient получает консультации пациента с учётом роли запрашивающего:
// администратор видит все, профессионал - только консультации этого пациента
// у себя, пациент - только свои собственные
func (s *Service) GetByPatient(ctx context.Context, user *domain.User, patientID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByPatient: fetching appointments of patient=%d for user=%d", patientID, user.ID)

	if patientID <= 0 {
		return nil, fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	var (
		list []*domain.Appointment
		err  error
	)

	switch domain.ResolvePatientAccess(user, patientID) {
	case domain.ScopeAll:
		list, err = s.appointmentRepo.GetByPatient(ctx, patientID)
	case domain.ScopeOwnAsProfessional:
		list, err = s.appointmentRepo.GetByPatientAndProfessional(ctx, patientID, user.ID)
	default:
		s.logger.Warn("GetByPatient: access denied for user=%d to patient=%d", user.ID, patientID)
		return nil, ErrAccessDenied
	}

	if err != nil {
		s.logger.Error("GetByPatient: repository error for patient=%d: %v", patientID, err)
		return nil, fmt.Errorf("%w: GetByPatient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPatient: successfully fetched %d appointments for patient=%d", len(list), patientID)
	return models.FromDomainAppointmentList(list), nil
}

// GetByProfessional получает консультации профессионала
// Доступна самому профессионалу и администратору
func (s *Service) GetByProfessional(ctx context.Context, user *domain.User, professionalID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetByProfessional: fetching appointments of professional=%d for user=%d", professionalID, user.ID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if !domain.CanViewProfessionalAppointments(user, professionalID) {
		s.logger.Warn("GetByProfessional: access denied for user=%d to professional=%d", user.ID, professionalID)
		return nil, ErrAccessDenied
	}

	list, err := s.appointmentRepo.GetByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetByProfessional: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetByProfessional - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByProfessional: successfully fetched %d appointments for professional=%d", len(list), professionalID)
	return models.FromDomainAppointmentList(list), nil
}
