package domain

import "time"

// Business owns services, tables, working hours and an optional external calendar
type Business struct {
	ID       int64
	Name     string
	Timezone string

	// AllowConcurrentServices lets bookings of different services overlap
	// on the single shared resource.
	AllowConcurrentServices bool

	Calendar *CalendarCredentials
}

// CalendarCredentials are the OAuth tokens of a connected external calendar
type CalendarCredentials struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
	CalendarID   string
}

// HasCalendar returns true if the business has a usable external calendar connection
func (b *Business) HasCalendar() bool {
	return b.Calendar != nil && (b.Calendar.AccessToken != "" || b.Calendar.RefreshToken != "")
}

// CalendarIDOrDefault returns the configured calendar id or "primary"
func (c *CalendarCredentials) CalendarIDOrDefault() string {
	if c == nil || c.CalendarID == "" {
		return DefaultCalendarID
	}
	return c.CalendarID
}

// Location resolves the business timezone, falling back to def
// when the timezone is empty or unknown.
func (b *Business) Location(def *time.Location) *time.Location {
	if b.Timezone != "" {
		if loc, err := time.LoadLocation(b.Timezone); err == nil {
			return loc
		}
	}
	if def == nil {
		return time.UTC
	}
	return def
}
