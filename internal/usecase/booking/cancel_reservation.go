package booking

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/audit"
	domain "github.com/ignaciosolar/TuBarberiaAPI/internal/domain/booking"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/metrics"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/timezone"
)

// CancelReservation applies the idempotent Active → Cancelled
// transition. Repeated cancels succeed without re-notifying.
type CancelReservation struct {
	repo     domain.Repository
	notifier Notifier
	cache    SlotCache
	metrics  *metrics.Metrics
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

func NewCancelReservation(
	repo domain.Repository,
	notifier Notifier,
	cache SlotCache,
	m *metrics.Metrics,
	auditD *audit.Dispatcher,
	log zerolog.Logger,
) *CancelReservation {
	return &CancelReservation{
		repo:     repo,
		notifier: notifier,
		cache:    cache,
		metrics:  m,
		audit:    auditD,
		log:      log,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	reservationID uint,
) error {

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return httperr.ErrBusiness("reservation_not_found")
	}

	var tz string
	var shopID uint
	barber, err := uc.repo.GetBarber(ctx, res.BarberID)
	if err != nil {
		// The barber row may be gone; the cancel must still go
		// through, on the default zone's clock.
		uc.log.Warn().Err(err).Uint("barber_id", res.BarberID).Msg("barber lookup failed on cancel")
	} else if barber.BarberShop != nil {
		tz = barber.BarberShop.Timezone
		shopID = barber.BarberShop.ID
	}
	now := timezone.NowIn(tz)

	if !domain.Cancel(res, now) {
		// Already cancelled: terminal state, nothing to notify.
		return nil
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.ReservationsCancelled.Inc()
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarberShopID: shopID,
			UserID:       &res.BarberID,
			Action:       "reservation_cancelled",
			Entity:       "reservation",
			EntityID:     &res.ID,
		})
	}

	if uc.cache != nil {
		loc := timezone.Location(tz)
		uc.cache.InvalidateDay(ctx, res.BarberID, res.StartTime.In(loc).Format("2006-01-02"))
	}

	if uc.notifier != nil {
		if detailed, err := uc.repo.GetReservationDetailed(ctx, res.ID); err == nil {
			uc.notifier.ReservationCancelled(detailed)
		} else {
			uc.log.Error().Err(err).Uint("reservation_id", res.ID).Msg("load reservation for email failed")
		}
	}

	return nil
}
