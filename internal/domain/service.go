package domain

import (
	"fmt"
	"time"
)

// CalendarMode describes how a service is scheduled
type CalendarMode string

const (
	ModeHourly           CalendarMode = "HOURLY"
	ModeDailyRental      CalendarMode = "DAILY_RENTAL"
	ModeTableReservation CalendarMode = "TABLE_RESERVATION"
)

// Validate returns an error for modes the scheduler does not know
func (m CalendarMode) Validate() error {
	switch m {
	case ModeHourly, ModeDailyRental, ModeTableReservation:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCalendarMode, string(m))
	}
}

// Service is a bookable offering of a business
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	DurationMinutes int
	CalendarMode    CalendarMode
	// RequiresTable is only meaningful for TABLE_RESERVATION
	RequiresTable bool
}

// EffectiveDuration returns the slot length, falling back to the default
// when the declared duration is unset or not positive.
func (s *Service) EffectiveDuration() time.Duration {
	return time.Duration(s.EffectiveDurationMinutes()) * time.Minute
}

// EffectiveDurationMinutes is EffectiveDuration in whole minutes
func (s *Service) EffectiveDurationMinutes() int {
	if s.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return s.DurationMinutes
}
