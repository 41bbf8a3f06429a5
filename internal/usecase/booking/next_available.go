package booking

import (
	"context"
	"time"

	domain "github.com/ignaciosolar/TuBarberiaAPI/internal/domain/booking"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/timezone"
)

// NextAvailable searches forward day by day, up to a bounded horizon,
// for the first free slot on a fine step grid. Day zero starts at
// "now"; later days start at the schedule's opening time.
type NextAvailable struct {
	repo domain.Repository

	// injectable clock for tests
	now func() time.Time
}

func NewNextAvailable(repo domain.Repository) *NextAvailable {
	return &NextAvailable{repo: repo, now: time.Now}
}

func (uc *NextAvailable) Execute(
	ctx context.Context,
	barberID uint,
	durationMin int,
) (time.Time, error) {

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("barber_not_found")
	}

	var tz string
	if barber.BarberShop != nil {
		tz = barber.BarberShop.Timezone
	}
	loc := timezone.Location(tz)

	now := uc.now().In(loc)
	duration := time.Duration(durationMin) * time.Minute
	step := time.Duration(domain.NextAvailableStepMin) * time.Minute

	for i := 0; i < domain.NextAvailableHorizon; i++ {
		date := now.AddDate(0, 0, i)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

		entries, err := uc.repo.ListScheduleEntries(ctx, barberID, int(day.Weekday()))
		if err != nil {
			return time.Time{}, err
		}
		if len(entries) == 0 {
			continue
		}

		windows := domain.DayWindows(entries, day)
		if i == 0 {
			windows = domain.ClampWindows(windows, now)
		}

		candidates := domain.GenerateSlots(windows, duration, step)
		if len(candidates) == 0 {
			continue
		}

		dayEnd := day.Add(24 * time.Hour)

		reservations, err := uc.repo.ListActiveReservationsInRange(ctx, barberID, day, dayEnd)
		if err != nil {
			return time.Time{}, err
		}
		blocks, err := uc.repo.ListBlocksInRange(ctx, barberID, day, dayEnd)
		if err != nil {
			return time.Time{}, err
		}

		free := domain.FreeSlots(candidates, domain.BusyWindows(reservations, blocks))
		if len(free) > 0 {
			return free[0].Start, nil
		}
	}

	// Exhausting the horizon is an explicit outcome, not an empty list.
	return time.Time{}, httperr.ErrBusiness("no_slot_in_horizon")
}
