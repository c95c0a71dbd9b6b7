package snapshot

import (
	"context"
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	GetWorkingHours(ctx context.Context, businessID int64) ([]*domain.WorkingHours, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByBusiness(ctx context.Context, businessID int64) ([]*domain.Table, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetOccupying(ctx context.Context, businessID int64, rng domain.Interval) ([]*domain.Booking, error)
}

// BusyWindowSource источник занятости внешнего календаря (не возвращает ошибок)
type BusyWindowSource interface {
	BusyWindows(ctx context.Context, business *domain.Business, rng domain.Interval) []domain.ExternalBusyWindow
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
