package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/ignaciosolar/TuBarberiaAPI/internal/domain/booking"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

func utcBarber() *models.User {
	return &models.User{
		ID:         1,
		BarberShop: &models.BarberShop{ID: 1, Timezone: "UTC"},
	}
}

func TestNextAvailable(t *testing.T) {
	ctx := context.Background()
	// Monday 2026-06-01
	monday := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Barber Not Found", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetBarber", ctx, uint(9)).Return(nil, errors.New("record not found"))

		uc := NewNextAvailable(repo)

		_, err := uc.Execute(ctx, 9, 30)
		assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	})

	t.Run("Day Zero Starts At Now", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetBarber", ctx, uint(1)).Return(utcBarber(), nil)
		repo.On("ListScheduleEntries", ctx, uint(1), mock.Anything).
			Return([]models.ScheduleEntry{
				{BarberID: 1, StartTime: "09:00", EndTime: "12:00"},
			}, nil)
		repo.On("ListActiveReservationsInRange", ctx, uint(1), mock.Anything, mock.Anything).
			Return([]models.Reservation{}, nil)
		repo.On("ListBlocksInRange", ctx, uint(1), mock.Anything, mock.Anything).
			Return([]models.BlockedTime{}, nil)

		uc := NewNextAvailable(repo)
		uc.now = func() time.Time { return monday.Add(10*time.Hour + 5*time.Minute) }

		next, err := uc.Execute(ctx, 1, 30)
		require.NoError(t, err)
		// Not 09:00: the search never proposes a start in the past.
		assert.Equal(t, monday.Add(10*time.Hour+5*time.Minute), next)
	})

	t.Run("Rolls Over To The Next Day", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetBarber", ctx, uint(1)).Return(utcBarber(), nil)
		repo.On("ListScheduleEntries", ctx, uint(1), mock.Anything).
			Return([]models.ScheduleEntry{
				{BarberID: 1, StartTime: "09:00", EndTime: "12:00"},
			}, nil)
		repo.On("ListActiveReservationsInRange", ctx, uint(1), mock.Anything, mock.Anything).
			Return([]models.Reservation{}, nil)
		repo.On("ListBlocksInRange", ctx, uint(1), mock.Anything, mock.Anything).
			Return([]models.BlockedTime{}, nil)

		uc := NewNextAvailable(repo)
		// Past closing time on Monday.
		uc.now = func() time.Time { return monday.Add(18 * time.Hour) }

		next, err := uc.Execute(ctx, 1, 30)
		require.NoError(t, err)
		assert.Equal(t, monday.AddDate(0, 0, 1).Add(9*time.Hour), next)
	})

	t.Run("Fully Booked Day Is Skipped", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetBarber", ctx, uint(1)).Return(utcBarber(), nil)
		repo.On("ListScheduleEntries", ctx, uint(1), mock.Anything).
			Return([]models.ScheduleEntry{
				{BarberID: 1, StartTime: "09:00", EndTime: "10:00"},
			}, nil)

		tuesday := monday.AddDate(0, 0, 1)
		// Monday is solidly blocked, Tuesday is open.
		repo.On("ListActiveReservationsInRange", ctx, uint(1), monday, mock.Anything).
			Return([]models.Reservation{
				{StartTime: monday.Add(9 * time.Hour), EndTime: monday.Add(10 * time.Hour)},
			}, nil)
		repo.On("ListActiveReservationsInRange", ctx, uint(1), tuesday, mock.Anything).
			Return([]models.Reservation{}, nil)
		repo.On("ListBlocksInRange", ctx, uint(1), mock.Anything, mock.Anything).
			Return([]models.BlockedTime{}, nil)

		uc := NewNextAvailable(repo)
		uc.now = func() time.Time { return monday }

		next, err := uc.Execute(ctx, 1, 30)
		require.NoError(t, err)
		assert.Equal(t, tuesday.Add(9*time.Hour), next)
	})

	t.Run("Horizon Exhausted", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetBarber", ctx, uint(1)).Return(utcBarber(), nil)
		repo.On("ListScheduleEntries", ctx, uint(1), mock.Anything).
			Return([]models.ScheduleEntry{}, nil)

		uc := NewNextAvailable(repo)
		uc.now = func() time.Time { return monday }

		_, err := uc.Execute(ctx, 1, 30)
		assert.True(t, httperr.IsBusiness(err, "no_slot_in_horizon"))

		repo.AssertNumberOfCalls(t, "ListScheduleEntries", domain.NextAvailableHorizon)
	})
}
