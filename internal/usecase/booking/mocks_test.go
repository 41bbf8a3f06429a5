package booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

// ======================================================
// REPOSITORY MOCK
// ======================================================

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetBarber(ctx context.Context, barberID uint) (*models.User, error) {
	args := m.Called(ctx, barberID)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetActiveOffering(ctx context.Context, barberServiceID, barberID uint) (*models.BarberService, error) {
	args := m.Called(ctx, barberServiceID, barberID)
	if o := args.Get(0); o != nil {
		return o.(*models.BarberService), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListScheduleEntries(ctx context.Context, barberID uint, weekday int) ([]models.ScheduleEntry, error) {
	args := m.Called(ctx, barberID, weekday)
	return args.Get(0).([]models.ScheduleEntry), args.Error(1)
}

func (m *mockRepository) ListSchedule(ctx context.Context, barberID uint) ([]models.ScheduleEntry, error) {
	args := m.Called(ctx, barberID)
	return args.Get(0).([]models.ScheduleEntry), args.Error(1)
}

func (m *mockRepository) ReplaceSchedule(ctx context.Context, barberID uint, entries []models.ScheduleEntry) error {
	args := m.Called(ctx, barberID, entries)
	return args.Error(0)
}

func (m *mockRepository) ListBlocksInRange(ctx context.Context, barberID uint, start, end time.Time) ([]models.BlockedTime, error) {
	args := m.Called(ctx, barberID, start, end)
	return args.Get(0).([]models.BlockedTime), args.Error(1)
}

func (m *mockRepository) ListActiveReservationsInRange(ctx context.Context, barberID uint, start, end time.Time) ([]models.Reservation, error) {
	args := m.Called(ctx, barberID, start, end)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *mockRepository) ListReservationsForDay(ctx context.Context, barberID uint, start, end time.Time) ([]models.Reservation, error) {
	args := m.Called(ctx, barberID, start, end)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *mockRepository) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*models.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetReservationDetailed(ctx context.Context, id uint) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*models.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) CreateReservationIfFree(ctx context.Context, r *models.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockRepository) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// ======================================================
// NOTIFIER STUB
// ======================================================

type stubNotifier struct {
	created   int
	cancelled int

	lastPaymentURL string
}

func (s *stubNotifier) ReservationCreated(res *models.Reservation, paymentURL string) {
	s.created++
	s.lastPaymentURL = paymentURL
}

func (s *stubNotifier) ReservationCancelled(res *models.Reservation) {
	s.cancelled++
}

// ======================================================
// CACHE STUB
// ======================================================

type stubCache struct {
	slots       []string
	hit         bool
	sets        int
	invalidated []string
}

func (s *stubCache) Get(ctx context.Context, barberID uint, day string, durationMin int) ([]string, bool) {
	return s.slots, s.hit
}

func (s *stubCache) Set(ctx context.Context, barberID uint, day string, durationMin int, slots []string) {
	s.sets++
	s.slots = slots
}

func (s *stubCache) InvalidateDay(ctx context.Context, barberID uint, day string) {
	s.invalidated = append(s.invalidated, day)
}
