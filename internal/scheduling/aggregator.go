package scheduling

import (
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// Aggregator drives the grid and the resolver over a day or a month.
type Aggregator struct {
	snap     *Snapshot
	resolver *Resolver
}

// NewAggregator builds an aggregator and its resolver.
func NewAggregator(snap *Snapshot, q Query) (*Aggregator, error) {
	resolver, err := NewResolver(snap, q)
	if err != nil {
		return nil, err
	}
	return &Aggregator{snap: snap, resolver: resolver}, nil
}

// Resolver returns the underlying resolver.
func (a *Aggregator) Resolver() *Resolver {
	return a.resolver
}

// Grid returns the candidate slots of the calendar date.
func (a *Aggregator) Grid(date time.Time) Grid {
	loc := a.snap.location()
	day := DayRange(date, loc).Start
	return NewGrid(day, a.snap.Schedule.ForDate(day), a.snap.Service.EffectiveDuration(), loc)
}

// FirstAvailableSlot stops at the first available slot of the day.
func (a *Aggregator) FirstAvailableSlot(date time.Time) (domain.Interval, bool) {
	for slot := range a.Grid(date).Slots() {
		if a.resolver.Available(slot) {
			return slot, true
		}
	}
	return domain.Interval{}, false
}

// HasAvailableSlot reports whether the day has any bookable slot.
func (a *Aggregator) HasAvailableSlot(date time.Time) bool {
	_, ok := a.FirstAvailableSlot(date)
	return ok
}

// AvailableSlots returns every available slot of the day in order.
func (a *Aggregator) AvailableSlots(date time.Time) []domain.Interval {
	slots := make([]domain.Interval, 0)
	for slot := range a.Grid(date).Slots() {
		if a.resolver.Available(slot) {
			slots = append(slots, slot)
		}
	}
	return slots
}

// FullyBookedDates returns the days of the month with no available slot,
// formatted YYYY-MM-DD and in ascending order. Closed days are included.
func (a *Aggregator) FullyBookedDates(year int, month time.Month) []string {
	rng := MonthRange(year, month, a.snap.location())

	dates := make([]string, 0)
	for day := rng.Start; day.Before(rng.End); day = day.AddDate(0, 0, 1) {
		if !a.HasAvailableSlot(day) {
			dates = append(dates, day.Format(domain.DateFormat))
		}
	}
	return dates
}
