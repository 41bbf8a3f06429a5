package booking

import (
	"time"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

// ===============================
// Slot generation (pure)
// ===============================

// DayWindows resolves a barber's schedule entries into absolute open
// windows on the given calendar day, in the day's location. Entries
// with malformed or inverted times are skipped.
func DayWindows(entries []models.ScheduleEntry, day time.Time) []Window {
	loc := day.Location()

	var windows []Window
	for _, e := range entries {
		start, err1 := time.Parse("15:04", e.StartTime)
		end, err2 := time.Parse("15:04", e.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}

		w := Window{
			Start: time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, loc),
			End:   time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), 0, 0, loc),
		}
		if !w.Start.Before(w.End) {
			continue
		}
		windows = append(windows, w)
	}

	return windows
}

// GenerateSlots produces candidate slots for every window: starting at
// the window start, stepping by step, while start+duration still fits.
// Order is window order, then chronological within each window.
func GenerateSlots(windows []Window, duration, step time.Duration) []Slot {
	if duration <= 0 || step <= 0 {
		return nil
	}

	var slots []Slot
	for _, w := range windows {
		for cur := w.Start; !cur.Add(duration).After(w.End); cur = cur.Add(step) {
			slots = append(slots, Slot{Start: cur, End: cur.Add(duration)})
		}
	}
	return slots
}

// FreeSlots filters candidates against busy windows (reservations and
// blocks share the same overlap predicate) and drops duplicate start
// times arising from overlapping schedule entries, keeping the first.
func FreeSlots(candidates []Slot, busy []Window) []Slot {
	seen := make(map[time.Time]struct{}, len(candidates))

	var free []Slot
	for _, s := range candidates {
		if _, dup := seen[s.Start]; dup {
			continue
		}

		conflict := false
		for _, b := range busy {
			if b.OverlapsSlot(s) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		seen[s.Start] = struct{}{}
		free = append(free, s)
	}
	return free
}

// BusyWindows collects the occupied intervals for a day: active
// reservations plus blocked times.
func BusyWindows(reservations []models.Reservation, blocks []models.BlockedTime) []Window {
	busy := make([]Window, 0, len(reservations)+len(blocks))
	for _, r := range reservations {
		busy = append(busy, Window{Start: r.StartTime, End: r.EndTime})
	}
	for _, b := range blocks {
		busy = append(busy, Window{Start: b.StartTime, End: b.EndTime})
	}
	return busy
}

// ClampWindows trims windows so no slot may start before the given
// instant. Used by next-available search on the current day.
func ClampWindows(windows []Window, notBefore time.Time) []Window {
	var out []Window
	for _, w := range windows {
		if !w.End.After(notBefore) {
			continue
		}
		if w.Start.Before(notBefore) {
			w.Start = notBefore
		}
		out = append(out, w)
	}
	return out
}
