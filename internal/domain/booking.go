package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a reservation of a service slot
type Booking struct {
	ID         int64
	BusinessID int64
	ServiceID  int64

	// ServiceMode is the calendar mode of the booked service,
	// joined from services when bookings are read.
	ServiceMode CalendarMode

	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus
	TableID   *int64

	CustomerName   string
	CustomerEmail  *string
	CustomerPhone  *string
	NumberOfPeople int
	Notes          *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booking's [StartTime, EndTime)
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// IsOccupying returns true if the booking blocks its slot (anything but cancelled)
func (b *Booking) IsOccupying() bool {
	return b.Status.IsOccupying()
}

// IsOccupying returns true for statuses that hold a slot
func (s BookingStatus) IsOccupying() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	default:
		return false
	}
}

// OnTable returns true if the booking holds the given table
func (b *Booking) OnTable(tableID int64) bool {
	return b.TableID != nil && *b.TableID == tableID
}
