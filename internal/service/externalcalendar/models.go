package externalcalendar

import (
	"fmt"
	"strings"
	"time"
)

// FailurePolicy что делать, если провайдер недоступен
type FailurePolicy string

const (
	// PolicyOpen считать, что внешних занятостей нет
	PolicyOpen FailurePolicy = "open"
	// PolicyClosed считать занятым весь запрошенный диапазон
	PolicyClosed FailurePolicy = "closed"
)

// DefaultTimeout ограничение на один запрос к провайдеру
const DefaultTimeout = 5 * time.Second

// Результаты обращения к провайдеру (лейбл outcome в метриках)
const (
	OutcomeSkipped  = "skipped"
	OutcomeCacheHit = "cache_hit"
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeTimeout  = "timeout"
)

// fallbackSourceID источник окна, созданного политикой closed
const fallbackSourceID = "failure-policy"

// ParseFailurePolicy разбирает значение из конфига. Пустое значение = open.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyOpen:
		return PolicyOpen, nil
	case PolicyClosed:
		return PolicyClosed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Config настройки сверки с внешним календарем
type Config struct {
	Timeout time.Duration
	Policy  FailurePolicy
}
