package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/ignaciosolar/TuBarberiaAPI/internal/domain/booking"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

func availabilityInput(date time.Time) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		BarberID:    1,
		Date:        date,
		DurationMin: 30,
		StepMin:     domain.DayViewStepMin,
	}
}

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()
	// Monday 2026-06-01
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("No Schedule Means Empty Day", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("ListScheduleEntries", ctx, uint(1), 1).
			Return([]models.ScheduleEntry{}, nil)

		uc := NewGetAvailability(repo, nil, nil)

		slots, err := uc.Execute(ctx, availabilityInput(day))
		require.NoError(t, err)
		assert.Equal(t, []string{}, slots)
	})

	t.Run("Filters Reservations And Blocks", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("ListScheduleEntries", ctx, uint(1), 1).
			Return([]models.ScheduleEntry{
				{BarberID: 1, Weekday: 1, StartTime: "09:00", EndTime: "12:00"},
			}, nil)
		repo.On("ListActiveReservationsInRange", ctx, uint(1), mock.Anything, mock.Anything).
			Return([]models.Reservation{
				{StartTime: day.Add(10 * time.Hour), EndTime: day.Add(10*time.Hour + 30*time.Minute)},
			}, nil)
		repo.On("ListBlocksInRange", ctx, uint(1), mock.Anything, mock.Anything).
			Return([]models.BlockedTime{
				{StartTime: day.Add(11 * time.Hour), EndTime: day.Add(12 * time.Hour)},
			}, nil)

		uc := NewGetAvailability(repo, nil, nil)

		slots, err := uc.Execute(ctx, availabilityInput(day))
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30", "10:30"}, slots)

		// Each store is hit exactly once for the whole day.
		repo.AssertNumberOfCalls(t, "ListActiveReservationsInRange", 1)
		repo.AssertNumberOfCalls(t, "ListBlocksInRange", 1)
	})

	t.Run("Cache Hit Skips The Store", func(t *testing.T) {
		repo := new(mockRepository)
		cache := &stubCache{slots: []string{"09:00"}, hit: true}

		uc := NewGetAvailability(repo, cache, nil)

		slots, err := uc.Execute(ctx, availabilityInput(day))
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00"}, slots)
		repo.AssertNotCalled(t, "ListScheduleEntries", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cache Miss Fills The Cache", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("ListScheduleEntries", ctx, uint(1), 1).
			Return([]models.ScheduleEntry{}, nil)
		cache := &stubCache{hit: false}

		uc := NewGetAvailability(repo, cache, nil)

		_, err := uc.Execute(ctx, availabilityInput(day))
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets)
	})
}
