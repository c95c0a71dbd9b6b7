package create_booking

import (
	"context"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	"github.com/brambleappmatus/biztree-sub002/internal/scheduling"
	"github.com/brambleappmatus/biztree-sub002/internal/service/snapshot"
)

// SnapshotLoader интерфейс загрузчика данных для расчета доступности
type SnapshotLoader interface {
	Load(ctx context.Context, serviceID int64, rangeOf snapshot.RangeFunc, opts snapshot.Options) (*scheduling.Snapshot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetOccupying(ctx context.Context, businessID int64, rng domain.Interval) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CalendarPusher публикует созданную бронь во внешний календарь бизнеса
type CalendarPusher interface {
	InsertBookingEvent(ctx context.Context, business *domain.Business, booking *domain.Booking, summary string) error
}

// MetricsRecorder интерфейс для учета конфликтов бронирования
type MetricsRecorder interface {
	ObserveBookingConflict(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
