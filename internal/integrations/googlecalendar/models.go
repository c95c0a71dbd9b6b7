package googlecalendar

import (
	"context"
	"net/http"
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

const (
	eventStatusCancelled    = "cancelled"
	transparencyTransparent = "transparent"
	transparencyOpaque      = "opaque"

	pageSize = 250
)

// Config настройки клиента
type Config struct {
	ClientID     string
	ClientSecret string

	// MarkerKey ключ private extended property с ID нашей брони
	MarkerKey string

	// RateLimit запросов в секунду ко всему API (0 - без ограничения)
	RateLimit float64
	Burst     int

	Timeout time.Duration

	// DefaultLocation для all-day событий бизнеса без часового пояса
	DefaultLocation *time.Location

	// Переопределения для тестов
	Endpoint   string
	TokenURL   string
	HTTPClient *http.Client
}

// TokenStore сохраняет обновленный OAuth токен бизнеса
type TokenStore interface {
	UpdateCalendarToken(ctx context.Context, businessID int64, creds *domain.CalendarCredentials) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
