package scheduling

import (
	"fmt"
	"sort"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// Verdict is the outcome of checking one slot.
type Verdict int

const (
	Available Verdict = iota
	ExternallyBusy
	InPast
	NoCapacity
	Occupied
)

func (v Verdict) String() string {
	switch v {
	case Available:
		return "available"
	case ExternallyBusy:
		return "externally_busy"
	case InPast:
		return "in_past"
	case NoCapacity:
		return "no_capacity"
	case Occupied:
		return "occupied"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Query carries per-request hints.
type Query struct {
	// NumberOfPeople filters tables by capacity; 0 means no hint.
	NumberOfPeople int
}

// Resolver judges candidate slots against a snapshot.
type Resolver struct {
	snap  *Snapshot
	query Query
	alloc allocator
}

// NewResolver selects the allocation mode once for the whole snapshot.
func NewResolver(snap *Snapshot, q Query) (*Resolver, error) {
	if snap == nil || snap.Service == nil {
		return nil, ErrInvalidSnapshot
	}

	mode, err := SelectMode(snap.Service, len(snap.Tables))
	if err != nil {
		return nil, err
	}
	alloc, err := newAllocator(mode, snap, q)
	if err != nil {
		return nil, err
	}

	return &Resolver{snap: snap, query: q, alloc: alloc}, nil
}

// Mode returns the allocation mode in effect.
func (r *Resolver) Mode() Mode {
	return r.alloc.mode()
}

// Check runs, in order: the external calendar block, the past-time block
// and the mode's resource allocation.
func (r *Resolver) Check(slot domain.Interval) Verdict {
	for _, w := range r.snap.BusyWindows {
		if w.IsSelfOrigin() {
			continue
		}
		if domain.Overlaps(slot, w.Interval) {
			return ExternallyBusy
		}
	}

	if slot.Start.Before(r.snap.Now) {
		return InPast
	}

	return r.alloc.allocate(slot)
}

// Available is Check(slot) == Available.
func (r *Resolver) Available(slot domain.Interval) bool {
	return r.Check(slot) == Available
}

// FreeTables lists tables that seat people and hold no occupying booking
// overlapping slot, ordered by capacity then id. people <= 0 means any size.
// Only occupancy is considered here.
func (r *Resolver) FreeTables(slot domain.Interval, people int) []*domain.Table {
	free := make([]*domain.Table, 0, len(r.snap.Tables))
	for _, t := range fittingTables(r.snap.Tables, people) {
		if tableFree(t, slot, r.snap.Bookings) {
			free = append(free, t)
		}
	}

	sort.SliceStable(free, func(i, j int) bool {
		if free[i].Capacity != free[j].Capacity {
			return free[i].Capacity < free[j].Capacity
		}
		return free[i].ID < free[j].ID
	})

	return free
}
