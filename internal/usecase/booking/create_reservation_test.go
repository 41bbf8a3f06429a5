package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

func validInput(start time.Time) CreateReservationInput {
	return CreateReservationInput{
		BarberID:        1,
		BarberServiceID: 5,
		ClientName:      "Juan Pérez",
		ClientPhone:     "+56911111111",
		ClientEmail:     "juan@example.com",
		StartTime:       start,
	}
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	log := zerolog.Nop()

	t.Run("Rejects Blank Client Data", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewCreateReservation(repo, nil, nil, nil, nil, nil, log)

		in := validInput(start)
		in.ClientName = "   "

		_, err := uc.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "invalid_input"))
		repo.AssertNotCalled(t, "GetBarber", mock.Anything, mock.Anything)
	})

	t.Run("Rejects Zero Start Time", func(t *testing.T) {
		repo := new(mockRepository)
		uc := NewCreateReservation(repo, nil, nil, nil, nil, nil, log)

		in := validInput(time.Time{})

		_, err := uc.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "invalid_input"))
	})

	t.Run("Unknown Barber", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetBarber", ctx, uint(1)).Return(nil, errors.New("record not found"))

		uc := NewCreateReservation(repo, nil, nil, nil, nil, nil, log)

		_, err := uc.Execute(ctx, validInput(start))
		assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	})

	t.Run("Inactive Or Foreign Offering", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetBarber", ctx, uint(1)).Return(utcBarber(), nil)
		repo.On("GetActiveOffering", ctx, uint(5), uint(1)).
			Return(nil, errors.New("record not found"))

		uc := NewCreateReservation(repo, nil, nil, nil, nil, nil, log)

		_, err := uc.Execute(ctx, validInput(start))
		assert.True(t, httperr.IsBusiness(err, "invalid_service"))
		repo.AssertNotCalled(t, "CreateReservationIfFree", mock.Anything, mock.Anything)
	})

	t.Run("Conflict Surfaces As Slot Unavailable", func(t *testing.T) {
		repo := new(mockRepository)
		notifier := &stubNotifier{}

		repo.On("GetBarber", ctx, uint(1)).Return(utcBarber(), nil)
		repo.On("GetActiveOffering", ctx, uint(5), uint(1)).
			Return(&models.BarberService{ID: 5, BarberID: 1, DurationMin: 30, Active: true}, nil)
		repo.On("CreateReservationIfFree", ctx, mock.Anything).
			Return(httperr.ErrBusiness("slot_unavailable"))

		uc := NewCreateReservation(repo, notifier, nil, nil, nil, nil, log)

		_, err := uc.Execute(ctx, validInput(start))
		assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
		assert.Zero(t, notifier.created, "losers must not notify")
	})

	t.Run("Admits And Notifies Once", func(t *testing.T) {
		repo := new(mockRepository)
		notifier := &stubNotifier{}
		cache := &stubCache{}

		repo.On("GetBarber", ctx, uint(1)).Return(utcBarber(), nil)
		repo.On("GetActiveOffering", ctx, uint(5), uint(1)).
			Return(&models.BarberService{ID: 5, BarberID: 1, DurationMin: 45, Active: true}, nil)
		repo.On("CreateReservationIfFree", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Reservation).ID = 7
			}).
			Return(nil)
		repo.On("GetReservationDetailed", ctx, uint(7)).
			Return(&models.Reservation{ID: 7, BarberID: 1}, nil)

		uc := NewCreateReservation(repo, notifier, nil, cache, nil, nil, log)

		out, err := uc.Execute(ctx, validInput(start))
		require.NoError(t, err)

		assert.Equal(t, uint(7), out.Reservation.ID)
		assert.Equal(t, "active", out.Reservation.Status)
		// End frozen from the offering duration at admission time.
		assert.Equal(t, start.Add(45*time.Minute), out.Reservation.EndTime)

		assert.Equal(t, 1, notifier.created)
		assert.Equal(t, []string{"2026-06-01"}, cache.invalidated)
	})

	t.Run("Trims Client Fields", func(t *testing.T) {
		repo := new(mockRepository)

		repo.On("GetBarber", ctx, uint(1)).Return(utcBarber(), nil)
		repo.On("GetActiveOffering", ctx, uint(5), uint(1)).
			Return(&models.BarberService{ID: 5, BarberID: 1, DurationMin: 30, Active: true}, nil)
		repo.On("CreateReservationIfFree", ctx, mock.Anything).Return(nil)

		uc := NewCreateReservation(repo, nil, nil, nil, nil, nil, log)

		in := validInput(start)
		in.ClientName = "  Juan Pérez  "

		out, err := uc.Execute(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "Juan Pérez", out.Reservation.ClientName)
	})
}
