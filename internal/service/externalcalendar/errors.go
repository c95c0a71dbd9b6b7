package externalcalendar

import "errors"

var (
	// ErrInvalidPolicy возвращается при неизвестной политике отказа
	ErrInvalidPolicy = errors.New("externalcalendar: invalid failure policy")
)
