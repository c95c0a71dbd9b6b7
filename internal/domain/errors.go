package domain

import "errors"

var (
	// ErrUnknownCalendarMode is returned for a calendarMode outside the known set
	ErrUnknownCalendarMode = errors.New("domain: unknown calendar mode")
)
