package externalcalendar

import (
	"context"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// Provider внешний календарь (Google Calendar)
type Provider interface {
	// ListBusyWindows возвращает занятые интервалы календаря бизнеса в диапазоне rng.
	// Маркер собственных событий провайдер кладет в ExternalBusyWindow.Marker.
	ListBusyWindows(ctx context.Context, business *domain.Business, rng domain.Interval) ([]domain.ExternalBusyWindow, error)
}

// Cache кэш отфильтрованных занятых интервалов
type Cache interface {
	Get(ctx context.Context, key string) ([]domain.ExternalBusyWindow, bool)
	Set(ctx context.Context, key string, windows []domain.ExternalBusyWindow)
}

// MetricsRecorder учет результатов обращений к провайдеру
type MetricsRecorder interface {
	ObserveExternalFetch(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
