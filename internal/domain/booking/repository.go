package booking

import (
	"context"
	"time"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

type Repository interface {
	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.User, error)

	// -------- Offering --------
	GetActiveOffering(
		ctx context.Context,
		barberServiceID uint,
		barberID uint,
	) (*models.BarberService, error)

	// -------- Schedule --------
	ListScheduleEntries(
		ctx context.Context,
		barberID uint,
		weekday int,
	) ([]models.ScheduleEntry, error)

	ListSchedule(
		ctx context.Context,
		barberID uint,
	) ([]models.ScheduleEntry, error)

	ReplaceSchedule(
		ctx context.Context,
		barberID uint,
		entries []models.ScheduleEntry,
	) error

	// -------- Blocks --------
	ListBlocksInRange(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.BlockedTime, error)

	// -------- Reservations (read) --------
	ListActiveReservationsInRange(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)

	ListReservationsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)

	GetReservation(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	GetReservationDetailed(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	// -------- Reservations (write) --------

	// CreateReservationIfFree re-checks the no-overlap invariant and
	// inserts inside one transaction, serialized per barber. Returns
	// the slot_unavailable business error on conflict.
	CreateReservationIfFree(
		ctx context.Context,
		r *models.Reservation,
	) error

	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error
}
