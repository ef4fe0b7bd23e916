package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	"github.com/consultafacil/CF-SchedulingService/internal/infra/lock"
	appointmentRepo "github.com/consultafacil/CF-SchedulingService/internal/infra/storage/appointment"
	"github.com/consultafacil/CF-SchedulingService/internal/integrations/slotservice"
	"github.com/consultafacil/CF-SchedulingService/pkg/ptr"
)

// --- фейки ---

type fakeAppointmentRepo struct {
	exists    bool
	existsErr error

	created   *domain.Appointment
	createErr error

	createCalls int
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *a
	created.ID = 101
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) ExistsByProfessionalAndTime(_ context.Context, _ int64, _ time.Time) (bool, error) {
	return f.exists, f.existsErr
}

type fakeSlotProvider struct {
	slots   []*domain.Slot
	listErr error

	setErr        error
	setCalls      int
	lastSlotID    int64
	lastAvailable bool
}

func (f *fakeSlotProvider) ListAvailable(_ context.Context, _ int64) ([]*domain.Slot, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.slots, nil
}

func (f *fakeSlotProvider) SetAvailability(_ context.Context, slotID int64, available bool) error {
	f.setCalls++
	f.lastSlotID = slotID
	f.lastAvailable = available
	return f.setErr
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLocker struct {
	err   error
	calls int
}

func (f *fakeLocker) WithProfessionalLock(ctx context.Context, _ int64, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
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

// --- хелперы ---

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeAppointmentRepo, provider *fakeSlotProvider, locker *fakeLocker) *UseCase {
	uc := NewUseCase(repo, provider, &fakeTxManager{}, locker, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func availableSlot(id int64, startsAt time.Time, length time.Duration) *domain.Slot {
	return &domain.Slot{
		ID:             id,
		ProfessionalID: 7,
		StartsAt:       startsAt,
		EndsAt:         startsAt.Add(length),
		Available:      true,
	}
}

func validRequest(scheduledAt time.Time) *Request {
	return &Request{
		PatientID:      42,
		ProfessionalID: 7,
		ScheduledAt:    scheduledAt,
		Observations:   ptr.Ptr("первичный приём"),
	}
}

// --- тесты ---

func TestUseCase_Execute_Success(t *testing.T) {
	scheduledAt := testNow.Add(48 * time.Hour)
	repo := &fakeAppointmentRepo{}
	provider := &fakeSlotProvider{slots: []*domain.Slot{
		availableSlot(10, scheduledAt.Add(-30*time.Minute), time.Hour),
	}}
	locker := &fakeLocker{}
	uc := newTestUseCase(repo, provider, locker)

	resp, err := uc.Execute(context.Background(), validRequest(scheduledAt))

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, int64(42), resp.PatientID)
	assert.Equal(t, int64(7), resp.ProfessionalID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, 1, locker.calls)

	// Покрывающий слот переведён в недоступные
	assert.Equal(t, 1, provider.setCalls)
	assert.Equal(t, int64(10), provider.lastSlotID)
	assert.False(t, provider.lastAvailable)
}

func TestUseCase_Execute_InstantAtSlotStart(t *testing.T) {
	scheduledAt := testNow.Add(48 * time.Hour)
	repo := &fakeAppointmentRepo{}
	provider := &fakeSlotProvider{slots: []*domain.Slot{
		availableSlot(10, scheduledAt, time.Hour),
	}}
	uc := newTestUseCase(repo, provider, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest(scheduledAt))

	require.NoError(t, err)
}

func TestUseCase_Execute_InstantAtSlotEndRejected(t *testing.T) {
	scheduledAt := testNow.Add(48 * time.Hour)
	repo := &fakeAppointmentRepo{}
	// Слот заканчивается ровно в момент запроса: полуоткрытый интервал
	provider := &fakeSlotProvider{slots: []*domain.Slot{
		availableSlot(10, scheduledAt.Add(-time.Hour), time.Hour),
	}}
	uc := newTestUseCase(repo, provider, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest(scheduledAt))

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 0, repo.createCalls)
}

func TestUseCase_Execute_SchedulingConflict(t *testing.T) {
	scheduledAt := testNow.Add(48 * time.Hour)
	repo := &fakeAppointmentRepo{exists: true}
	provider := &fakeSlotProvider{slots: []*domain.Slot{
		availableSlot(10, scheduledAt, time.Hour),
	}}
	uc := newTestUseCase(repo, provider, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest(scheduledAt))

	assert.ErrorIs(t, err, ErrSchedulingConflict)
	assert.Equal(t, 0, repo.createCalls)
	assert.Equal(t, 0, provider.setCalls)
}

func TestUseCase_Execute_UniqueConstraintMapsToConflict(t *testing.T) {
	// Конкурент прошёл check-then-act первым: репозиторий отдаёт нарушение
	// уникального индекса, наружу уходит тот же конфликт расписания
	scheduledAt := testNow.Add(48 * time.Hour)
	repo := &fakeAppointmentRepo{createErr: appointmentRepo.ErrAppointmentConflict}
	provider := &fakeSlotProvider{slots: []*domain.Slot{
		availableSlot(10, scheduledAt, time.Hour),
	}}
	uc := newTestUseCase(repo, provider, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest(scheduledAt))

	assert.ErrorIs(t, err, ErrSchedulingConflict)
}

func TestUseCase_Execute_PastTime(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	provider := &fakeSlotProvider{}
	uc := newTestUseCase(repo, provider, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest(testNow.Add(-time.Minute)))
	assert.ErrorIs(t, err, ErrPastTime)

	// Текущий момент тоже не в будущем
	_, err = uc.Execute(context.Background(), validRequest(testNow))
	assert.ErrorIs(t, err, ErrPastTime)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeSlotProvider{}, &fakeLocker{})

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "zero patient",
			req:  &Request{PatientID: 0, ProfessionalID: 7, ScheduledAt: testNow.Add(time.Hour)},
		},
		{
			name: "zero professional",
			req:  &Request{PatientID: 42, ProfessionalID: 0, ScheduledAt: testNow.Add(time.Hour)},
		},
		{
			name: "zero scheduled time",
			req:  &Request{PatientID: 42, ProfessionalID: 7},
		},
		{
			name: "observations over limit",
			req: &Request{
				PatientID:      42,
				ProfessionalID: 7,
				ScheduledAt:    testNow.Add(time.Hour),
				Observations:   ptr.Ptr(string(make([]rune, domain.MaxObservationsLength+1))),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_NoCoveringSlot(t *testing.T) {
	scheduledAt := testNow.Add(48 * time.Hour)
	repo := &fakeAppointmentRepo{}
	provider := &fakeSlotProvider{slots: []*domain.Slot{
		availableSlot(10, scheduledAt.Add(2*time.Hour), time.Hour),
	}}
	uc := newTestUseCase(repo, provider, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest(scheduledAt))

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestUseCase_Execute_RemoteSlotServiceDownDegrades(t *testing.T) {
	scheduledAt := testNow.Add(48 * time.Hour)
	repo := &fakeAppointmentRepo{}
	provider := &fakeSlotProvider{listErr: slotservice.ErrServiceUnavailable}
	uc := newTestUseCase(repo, provider, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest(scheduledAt))

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 0, repo.createCalls)
}

func TestUseCase_Execute_LockBusy(t *testing.T) {
	scheduledAt := testNow.Add(48 * time.Hour)
	repo := &fakeAppointmentRepo{}
	provider := &fakeSlotProvider{slots: []*domain.Slot{
		availableSlot(10, scheduledAt, time.Hour),
	}}
	locker := &fakeLocker{err: lock.ErrLockNotAcquired}
	uc := newTestUseCase(repo, provider, locker)

	_, err := uc.Execute(context.Background(), validRequest(scheduledAt))

	assert.ErrorIs(t, err, ErrConcurrentBooking)
	assert.Equal(t, 0, repo.createCalls)
}

func TestUseCase_Execute_SlotFlipFailureKeepsBooking(t *testing.T) {
	scheduledAt := testNow.Add(48 * time.Hour)
	repo := &fakeAppointmentRepo{}
	provider := &fakeSlotProvider{
		slots:  []*domain.Slot{availableSlot(10, scheduledAt, time.Hour)},
		setErr: errors.New("slot service timeout"),
	}
	uc := newTestUseCase(repo, provider, &fakeLocker{})

	resp, err := uc.Execute(context.Background(), validRequest(scheduledAt))

	// Бронирование состоялось, несмотря на сбой перевода слота
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, 1, provider.setCalls)
}

func TestUseCase_Execute_FirstCoveringSlotWins(t *testing.T) {
	scheduledAt := testNow.Add(48 * time.Hour)
	repo := &fakeAppointmentRepo{}
	provider := &fakeSlotProvider{slots: []*domain.Slot{
		availableSlot(10, scheduledAt.Add(-30*time.Minute), time.Hour),
		availableSlot(11, scheduledAt.Add(-15*time.Minute), time.Hour),
	}}
	uc := newTestUseCase(repo, provider, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest(scheduledAt))

	require.NoError(t, err)
	assert.Equal(t, int64(10), provider.lastSlotID)
}

func TestUseCase_Execute_RepositoryErrorIsInternal(t *testing.T) {
	scheduledAt := testNow.Add(48 * time.Hour)
	repo := &fakeAppointmentRepo{existsErr: errors.New("connection refused")}
	provider := &fakeSlotProvider{}
	uc := newTestUseCase(repo, provider, &fakeLocker{})

	_, err := uc.Execute(context.Background(), validRequest(scheduledAt))

	assert.ErrorIs(t, err, ErrInternal)
}
