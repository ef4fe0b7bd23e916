package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	slotRepo "github.com/consultafacil/CF-SchedulingService/internal/infra/storage/slot"
	"github.com/consultafacil/CF-SchedulingService/internal/service/slots/models"
)

type fakeSlotRepo struct {
	slot   *domain.Slot
	getErr error

	list []*domain.Slot

	listCalls          int
	listAvailableCalls int
	setCalls           int
	deleteCalls        int

	lastAvailable bool
}

func (f *fakeSlotRepo) Create(_ context.Context, s *domain.Slot) (*domain.Slot, error) {
	created := *s
	created.ID = 10
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, _ int64) (*domain.Slot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) ListByProfessional(_ context.Context, _ int64) ([]*domain.Slot, error) {
	f.listCalls++
	return f.list, nil
}

func (f *fakeSlotRepo) ListAvailableByProfessional(_ context.Context, _ int64) ([]*domain.Slot, error) {
	f.listAvailableCalls++
	return f.list, nil
}

func (f *fakeSlotRepo) SetAvailability(_ context.Context, _ int64, available bool) error {
	f.setCalls++
	f.lastAvailable = available
	return nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, _ int64) error {
	f.deleteCalls++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

var professional = &domain.User{ID: 7, Roles: []domain.Role{domain.RoleProfessional}}

func newTestService(repo *fakeSlotRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func TestService_Create(t *testing.T) {
	t.Run("professional publishes own slot", func(t *testing.T) {
		svc := newTestService(&fakeSlotRepo{})

		resp, err := svc.Create(context.Background(), professional, &models.CreateSlotRequest{
			ProfessionalID: 7,
			StartsAt:       testNow.Add(24 * time.Hour),
			EndsAt:         testNow.Add(25 * time.Hour),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.True(t, resp.Available)
	})

	t.Run("professional may not publish for another", func(t *testing.T) {
		svc := newTestService(&fakeSlotRepo{})

		_, err := svc.Create(context.Background(), professional, &models.CreateSlotRequest{
			ProfessionalID: 8,
			StartsAt:       testNow.Add(24 * time.Hour),
			EndsAt:         testNow.Add(25 * time.Hour),
		})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("administrator publishes for anyone", func(t *testing.T) {
		svc := newTestService(&fakeSlotRepo{})
		admin := &domain.User{ID: 1, Roles: []domain.Role{domain.RoleAdministrator}}

		_, err := svc.Create(context.Background(), admin, &models.CreateSlotRequest{
			ProfessionalID: 8,
			StartsAt:       testNow.Add(24 * time.Hour),
			EndsAt:         testNow.Add(25 * time.Hour),
		})

		assert.NoError(t, err)
	})

	t.Run("inverted interval is rejected", func(t *testing.T) {
		svc := newTestService(&fakeSlotRepo{})

		_, err := svc.Create(context.Background(), professional, &models.CreateSlotRequest{
			ProfessionalID: 7,
			StartsAt:       testNow.Add(25 * time.Hour),
			EndsAt:         testNow.Add(24 * time.Hour),
		})

		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("slot in the past is rejected", func(t *testing.T) {
		svc := newTestService(&fakeSlotRepo{})

		_, err := svc.Create(context.Background(), professional, &models.CreateSlotRequest{
			ProfessionalID: 7,
			StartsAt:       testNow.Add(-time.Hour),
			EndsAt:         testNow.Add(time.Hour),
		})

		assert.ErrorIs(t, err, ErrPastSlot)
	})
}

func TestService_List(t *testing.T) {
	repo := &fakeSlotRepo{list: []*domain.Slot{{ID: 10, ProfessionalID: 7, Available: true}}}
	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), 7, true)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, repo.listAvailableCalls)
	assert.Equal(t, 0, repo.listCalls)

	_, err = svc.List(context.Background(), 7, false)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	_, err = svc.List(context.Background(), 0, false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_SetAvailability(t *testing.T) {
	t.Run("owner toggles availability", func(t *testing.T) {
		repo := &fakeSlotRepo{slot: &domain.Slot{ID: 10, ProfessionalID: 7, Available: true}}
		svc := newTestService(repo)

		err := svc.SetAvailability(context.Background(), professional, 10, false)

		require.NoError(t, err)
		assert.Equal(t, 1, repo.setCalls)
		assert.False(t, repo.lastAvailable)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		repo := &fakeSlotRepo{slot: &domain.Slot{ID: 10, ProfessionalID: 8}}
		svc := newTestService(repo)

		err := svc.SetAvailability(context.Background(), professional, 10, false)

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Equal(t, 0, repo.setCalls)
	})

	t.Run("missing slot", func(t *testing.T) {
		repo := &fakeSlotRepo{getErr: slotRepo.ErrSlotNotFound}
		svc := newTestService(repo)

		err := svc.SetAvailability(context.Background(), professional, 10, false)

		assert.ErrorIs(t, err, ErrSlotNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("owner deletes slot", func(t *testing.T) {
		repo := &fakeSlotRepo{slot: &domain.Slot{ID: 10, ProfessionalID: 7}}
		svc := newTestService(repo)

		err := svc.Delete(context.Background(), professional, 10)

		require.NoError(t, err)
		assert.Equal(t, 1, repo.deleteCalls)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		repo := &fakeSlotRepo{slot: &domain.Slot{ID: 10, ProfessionalID: 8}}
		svc := newTestService(repo)

		err := svc.Delete(context.Background(), professional, 10)

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Equal(t, 0, repo.deleteCalls)
	})
}
