package booking

import (
	"time"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

// ===============================
// Reservation status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusActive
}

// Cancel applies the one-way Active → Cancelled transition. It returns
// false when the reservation is already cancelled, so callers can keep
// cancellation notifications single-shot.
func Cancel(r *models.Reservation, now time.Time) bool {
	if Status(r.Status) == StatusCancelled {
		return false
	}

	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
	return true
}

func IsActive(r *models.Reservation) bool {
	return Status(r.Status) == StatusActive
}
