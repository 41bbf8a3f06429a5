package booking

import "time"

// Slot-generation granularity observed by the clients: half-hour grid
// for the day view, finer grid for next-available search.
const (
	DayViewStepMin       = 30
	NextAvailableStepMin = 10
	NextAvailableHorizon = 7 // calendar days
)

type AvailabilityInput struct {
	BarberID    uint
	Date        time.Time
	DurationMin int
	StepMin     int
}
