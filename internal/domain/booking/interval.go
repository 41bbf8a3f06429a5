package booking

import "time"

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Slot is a candidate bookable interval of the requested duration.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

func (w Window) OverlapsSlot(s Slot) bool {
	return Overlaps(s.Start, s.End, w.Start, w.End)
}
