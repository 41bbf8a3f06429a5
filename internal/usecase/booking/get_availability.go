package booking

import (
	"context"
	"time"

	domain "github.com/ignaciosolar/TuBarberiaAPI/internal/domain/booking"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/metrics"
)

// GetAvailability computes the bookable start times for a barber on
// one calendar day. Pure read: schedule entries resolve to windows,
// candidates are generated on the step grid, then filtered against the
// day's active reservations and blocks (each fetched once).
type GetAvailability struct {
	repo    domain.Repository
	cache   SlotCache
	metrics *metrics.Metrics
}

func NewGetAvailability(repo domain.Repository, cache SlotCache, m *metrics.Metrics) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache, metrics: m}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	day := in.Date.Format("2006-01-02")

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, in.BarberID, day, in.DurationMin); ok {
			if uc.metrics != nil {
				uc.metrics.AvailabilityCacheHits.Inc()
			}
			return slots, nil
		}
	}
	if uc.metrics != nil {
		uc.metrics.AvailabilityCacheMisses.Inc()
	}

	starts, err := uc.compute(ctx, in)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, in.BarberID, day, in.DurationMin, starts)
	}
	return starts, nil
}

func (uc *GetAvailability) compute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	weekday := int(in.Date.Weekday())

	entries, err := uc.repo.ListScheduleEntries(ctx, in.BarberID, weekday)
	if err != nil {
		return nil, err
	}

	// No schedule for that weekday is an empty day, not an error.
	if len(entries) == 0 {
		return []string{}, nil
	}

	windows := domain.DayWindows(entries, in.Date)
	candidates := domain.GenerateSlots(
		windows,
		time.Duration(in.DurationMin)*time.Minute,
		time.Duration(in.StepMin)*time.Minute,
	)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	reservations, err := uc.repo.ListActiveReservationsInRange(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	blocks, err := uc.repo.ListBlocksInRange(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	free := domain.FreeSlots(candidates, domain.BusyWindows(reservations, blocks))

	starts := make([]string, 0, len(free))
	for _, s := range free {
		starts = append(starts, s.Start.In(loc).Format("15:04"))
	}
	return starts, nil
}
