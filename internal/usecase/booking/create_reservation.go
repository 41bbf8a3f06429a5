package booking

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/audit"
	domain "github.com/ignaciosolar/TuBarberiaAPI/internal/domain/booking"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/metrics"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	BarberID        uint
	BarberServiceID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	StartTime time.Time
}

type CreateReservationOutput struct {
	Reservation *models.Reservation
	PaymentURL  string
}

// ======================================================
// USE CASE
// ======================================================

// CreateReservation owns the admission decision for new bookings. The
// conflict re-check and the insert run inside one storage transaction
// serialized per barber, so two overlapping concurrent requests can
// never both commit.
type CreateReservation struct {
	repo     domain.Repository
	notifier Notifier
	payments PaymentLinker
	cache    SlotCache
	metrics  *metrics.Metrics
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

func NewCreateReservation(
	repo domain.Repository,
	notifier Notifier,
	payments PaymentLinker,
	cache SlotCache,
	m *metrics.Metrics,
	auditD *audit.Dispatcher,
	log zerolog.Logger,
) *CreateReservation {
	return &CreateReservation{
		repo:     repo,
		notifier: notifier,
		payments: payments,
		cache:    cache,
		metrics:  m,
		audit:    auditD,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*CreateReservationOutput, error) {

	// --------------------------------------------------
	// 1. Input validation
	// --------------------------------------------------
	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.ClientPhone) == "" {
		return nil, httperr.ErrBusiness("invalid_input")
	}
	if in.StartTime.IsZero() {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	// --------------------------------------------------
	// 2. Barber and shop
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if barber.BarberShop == nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	shop := barber.BarberShop

	// --------------------------------------------------
	// 3. Service offering (must be active and the barber's own)
	// --------------------------------------------------
	offering, err := uc.repo.GetActiveOffering(ctx, in.BarberServiceID, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_service")
	}

	// End is frozen now; later duration edits don't move it.
	end := in.StartTime.Add(time.Duration(offering.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 4. Atomic conflict check + insert
	// --------------------------------------------------
	res := &models.Reservation{
		BarberID:        in.BarberID,
		BarberServiceID: offering.ID,
		ClientName:      strings.TrimSpace(in.ClientName),
		ClientPhone:     strings.TrimSpace(in.ClientPhone),
		ClientEmail:     strings.TrimSpace(in.ClientEmail),
		StartTime:       in.StartTime,
		EndTime:         end,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservationIfFree(ctx, res); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") || httperr.IsExclusionConflict(err) {
			if uc.metrics != nil {
				uc.metrics.ReservationConflicts.Inc()
			}
			uc.dispatchAudit(shop, in.BarberID, "reservation_conflict", nil, map[string]any{
				"start": in.StartTime,
				"end":   end,
			})
			return nil, httperr.ErrBusiness("slot_unavailable")
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ReservationsCreated.Inc()
	}
	uc.dispatchAudit(shop, in.BarberID, "reservation_created", &res.ID, nil)
	uc.invalidateDay(ctx, res, shop)

	// --------------------------------------------------
	// 5. Deposit link (optional, never blocks the booking)
	// --------------------------------------------------
	var paymentURL string
	if uc.payments != nil && shop.DepositAmount > 0 {
		paymentURL, err = uc.payments.DepositLink(ctx, shop, res)
		if err != nil {
			uc.log.Error().Err(err).Uint("reservation_id", res.ID).Msg("deposit link failed")
			paymentURL = ""
		}
	}

	// --------------------------------------------------
	// 6. Notifications (fire-and-forget)
	// --------------------------------------------------
	if uc.notifier != nil {
		if detailed, err := uc.repo.GetReservationDetailed(ctx, res.ID); err == nil {
			uc.notifier.ReservationCreated(detailed, paymentURL)
		} else {
			uc.log.Error().Err(err).Uint("reservation_id", res.ID).Msg("load reservation for email failed")
		}
	}

	return &CreateReservationOutput{Reservation: res, PaymentURL: paymentURL}, nil
}

func (uc *CreateReservation) invalidateDay(ctx context.Context, res *models.Reservation, shop *models.BarberShop) {
	if uc.cache == nil {
		return
	}
	loc := timezone.Location(shop.Timezone)
	uc.cache.InvalidateDay(ctx, res.BarberID, res.StartTime.In(loc).Format("2006-01-02"))
}

func (uc *CreateReservation) dispatchAudit(
	shop *models.BarberShop,
	barberID uint,
	action string,
	entityID *uint,
	meta any,
) {
	if uc.audit == nil {
		return
	}
	uc.audit.Dispatch(audit.Event{
		BarberShopID: shop.ID,
		UserID:       &barberID,
		Action:       action,
		Entity:       "reservation",
		EntityID:     entityID,
		Metadata:     meta,
	})
}
