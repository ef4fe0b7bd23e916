package cancel_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	appointmentRepo "github.com/consultafacil/CF-SchedulingService/internal/infra/storage/appointment"
)

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	getErr      error

	deleteErr   error
	deleteCalls int
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appointment, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, _ int64) error {
	f.deleteCalls++
	return f.deleteErr
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeAppointmentRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func scheduledAppointment(scheduledAt time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:             1,
		PatientID:      42,
		ProfessionalID: 7,
		ScheduledAt:    scheduledAt,
		Status:         domain.StatusScheduled,
	}
}

var patient = &domain.User{ID: 42, Roles: []domain.Role{domain.RolePatient}}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment(testNow.Add(48 * time.Hour))}
	uc := newTestUseCase(repo)

	err := uc.Execute(context.Background(), patient, 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestUseCase_Execute_ExactlyAtNoticeBoundary(t *testing.T) {
	// Ровно за 24 часа отмена ещё разрешена
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment(testNow.Add(24 * time.Hour))}
	uc := newTestUseCase(repo)

	err := uc.Execute(context.Background(), patient, 1)

	assert.NoError(t, err)
}

func TestUseCase_Execute_TooLateToCancel(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment(testNow.Add(23 * time.Hour))}
	uc := newTestUseCase(repo)

	err := uc.Execute(context.Background(), patient, 1)

	assert.ErrorIs(t, err, ErrTooLateToCancel)
	// Консультация осталась нетронутой
	assert.Equal(t, 0, repo.deleteCalls)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	uc := newTestUseCase(repo)

	err := uc.Execute(context.Background(), patient, 1)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUseCase_Execute_RepeatCancelIsNotFound(t *testing.T) {
	// Повторная отмена: запись уже удалена конкурентным запросом
	repo := &fakeAppointmentRepo{
		appointment: scheduledAppointment(testNow.Add(48 * time.Hour)),
		deleteErr:   appointmentRepo.ErrAppointmentNotFound,
	}
	uc := newTestUseCase(repo)

	err := uc.Execute(context.Background(), patient, 1)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: scheduledAppointment(testNow.Add(48 * time.Hour))}
	uc := newTestUseCase(repo)

	tests := []struct {
		name string
		user *domain.User
		want error
	}{
		{
			name: "another patient",
			user: &domain.User{ID: 43, Roles: []domain.Role{domain.RolePatient}},
			want: ErrAccessDenied,
		},
		{
			name: "another professional",
			user: &domain.User{ID: 8, Roles: []domain.Role{domain.RoleProfessional}},
			want: ErrAccessDenied,
		},
		{
			name: "appointment professional may cancel",
			user: &domain.User{ID: 7, Roles: []domain.Role{domain.RoleProfessional}},
			want: nil,
		},
		{
			name: "administrator may cancel",
			user: &domain.User{ID: 99, Roles: []domain.Role{domain.RoleAdministrator}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.Execute(context.Background(), tt.user, 1)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUseCase_Execute_RepositoryErrorIsInternal(t *testing.T) {
	repo := &fakeAppointmentRepo{getErr: errors.New("connection refused")}
	uc := newTestUseCase(repo)

	err := uc.Execute(context.Background(), patient, 1)

	assert.ErrorIs(t, err, ErrInternal)
}
