package scheduling

import (
	"fmt"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// Mode is the resource allocation strategy selected for a snapshot.
type Mode int

const (
	// ModeTablePool: the business has tables; a slot needs a free table that fits.
	ModeTablePool Mode = iota + 1
	// ModeWalkIn: table reservation without a physical seat; no capacity ceiling.
	ModeWalkIn
	// ModeSharedResource: the business itself is the single resource.
	ModeSharedResource
)

func (m Mode) String() string {
	switch m {
	case ModeTablePool:
		return "table_pool"
	case ModeWalkIn:
		return "walk_in"
	case ModeSharedResource:
		return "shared_resource"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// SelectMode picks the allocation mode. Any table switches the business
// into table pool mode whatever the calendar mode is. Unknown calendar
// modes are rejected.
func SelectMode(service *domain.Service, tableCount int) (Mode, error) {
	if err := service.CalendarMode.Validate(); err != nil {
		return 0, err
	}
	if tableCount > 0 {
		return ModeTablePool, nil
	}

	switch service.CalendarMode {
	case domain.ModeTableReservation:
		if !service.RequiresTable {
			return ModeWalkIn, nil
		}
		return ModeSharedResource, nil
	case domain.ModeHourly, domain.ModeDailyRental:
		return ModeSharedResource, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownCalendarMode, string(service.CalendarMode))
	}
}

// allocator decides step 3 of the verdict for one mode.
type allocator interface {
	mode() Mode
	allocate(slot domain.Interval) Verdict
}

func newAllocator(mode Mode, snap *Snapshot, q Query) (allocator, error) {
	switch mode {
	case ModeTablePool:
		return &tablePool{
			candidates: fittingTables(snap.Tables, q.NumberOfPeople),
			bookings:   snap.Bookings,
		}, nil
	case ModeWalkIn:
		return walkIn{}, nil
	case ModeSharedResource:
		return &sharedResource{
			serviceID:  snap.Service.ID,
			concurrent: snap.Business != nil && snap.Business.AllowConcurrentServices,
			bookings:   snap.Bookings,
		}, nil
	default:
		return nil, fmt.Errorf("scheduling: no allocator for %s", mode)
	}
}

type tablePool struct {
	candidates []*domain.Table
	bookings   []*domain.Booking
}

func (p *tablePool) mode() Mode { return ModeTablePool }

func (p *tablePool) allocate(slot domain.Interval) Verdict {
	if len(p.candidates) == 0 {
		return NoCapacity
	}
	for _, table := range p.candidates {
		if tableFree(table, slot, p.bookings) {
			return Available
		}
	}
	return Occupied
}

type walkIn struct{}

func (walkIn) mode() Mode { return ModeWalkIn }

func (walkIn) allocate(domain.Interval) Verdict { return Available }

type sharedResource struct {
	serviceID  int64
	concurrent bool
	bookings   []*domain.Booking
}

func (r *sharedResource) mode() Mode { return ModeSharedResource }

func (r *sharedResource) allocate(slot domain.Interval) Verdict {
	for _, b := range r.bookings {
		if !b.IsOccupying() {
			continue
		}
		// table reservations hold a different resource
		if b.ServiceMode == domain.ModeTableReservation {
			continue
		}
		if r.concurrent && b.ServiceID != r.serviceID {
			continue
		}
		if domain.Overlaps(slot, b.Interval()) {
			return Occupied
		}
	}
	return Available
}

func fittingTables(tables []*domain.Table, people int) []*domain.Table {
	out := make([]*domain.Table, 0, len(tables))
	for _, t := range tables {
		if t.Fits(people) {
			out = append(out, t)
		}
	}
	return out
}

func tableFree(table *domain.Table, slot domain.Interval, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.IsOccupying() && b.OnTable(table.ID) && domain.Overlaps(slot, b.Interval()) {
			return false
		}
	}
	return true
}
