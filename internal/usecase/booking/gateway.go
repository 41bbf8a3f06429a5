package booking

import (
	"context"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

// Notifier dispatches reservation emails. Implementations are
// fire-and-forget; use cases never observe delivery failures.
type Notifier interface {
	ReservationCreated(res *models.Reservation, paymentURL string)
	ReservationCancelled(res *models.Reservation)
}

// PaymentLinker builds an optional deposit checkout link for a shop
// that configured one. A nil linker disables the feature.
type PaymentLinker interface {
	DepositLink(ctx context.Context, shop *models.BarberShop, res *models.Reservation) (string, error)
}

// SlotCache caches computed day views and is invalidated by every
// mutation of a barber's timeline. A nil cache is a valid no-op.
type SlotCache interface {
	Get(ctx context.Context, barberID uint, day string, durationMin int) ([]string, bool)
	Set(ctx context.Context, barberID uint, day string, durationMin int, slots []string)
	InvalidateDay(ctx context.Context, barberID uint, day string)
}
