package scheduling

import (
	"iter"
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// Grid is the sequence of fixed-length candidate slots of one business day.
// The zero Grid is closed and yields nothing.
type Grid struct {
	open  time.Time
	close time.Time
	step  time.Duration
}

// NewGrid builds the grid for the calendar date (year, month, day of date)
// in loc. A nil entry, a closed day, unparsable times or close <= open
// give an empty grid.
func NewGrid(date time.Time, hours *domain.WorkingHours, step time.Duration, loc *time.Location) Grid {
	if hours == nil || hours.IsClosed || step <= 0 {
		return Grid{}
	}
	if loc == nil {
		loc = time.UTC
	}

	open, err := hours.OpenTime.On(date, loc)
	if err != nil {
		return Grid{}
	}
	closing, err := hours.CloseTime.On(date, loc)
	if err != nil {
		return Grid{}
	}
	if !closing.After(open) {
		return Grid{}
	}

	return Grid{open: open, close: closing, step: step}
}

// IsOpen reports whether the grid can yield at least one slot.
func (g Grid) IsOpen() bool {
	return g.step > 0 && !g.open.Add(g.step).After(g.close)
}

// Hours returns the [open, close) window of the day.
func (g Grid) Hours() domain.Interval {
	return domain.Interval{Start: g.open, End: g.close}
}

// Slots yields [t, t+step) from open while t+step <= close.
// The sequence is lazy and can be ranged over any number of times.
func (g Grid) Slots() iter.Seq[domain.Interval] {
	return func(yield func(domain.Interval) bool) {
		if g.step <= 0 {
			return
		}
		for t := g.open; !t.Add(g.step).After(g.close); t = t.Add(g.step) {
			if !yield(domain.NewInterval(t, g.step)) {
				return
			}
		}
	}
}

// Contains reports whether slot is exactly one of the grid's slots.
func (g Grid) Contains(slot domain.Interval) bool {
	if !g.IsOpen() || slot.Duration() != g.step {
		return false
	}
	if !g.Hours().Contains(slot) {
		return false
	}
	return slot.Start.Sub(g.open)%g.step == 0
}
