package domain

// Default values
const (
	DefaultServiceDurationMinutes = 30
	DefaultCalendarID             = "primary"
	DefaultMarkerKey              = "bookingId"
)

// Validation limits
const (
	MaxNumberOfPeople  = 100
	MaxDurationMinutes = 24 * 60
	MaxNotesLength     = 500
	MaxCustomerNameLen = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses statuses that block a slot.
// Used as the filter when bookings are read for availability.
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
