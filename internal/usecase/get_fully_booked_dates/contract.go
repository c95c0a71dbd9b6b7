package get_fully_booked_dates

import (
	"context"

	"github.com/brambleappmatus/biztree-sub002/internal/scheduling"
	"github.com/brambleappmatus/biztree-sub002/internal/service/snapshot"
)

// SnapshotLoader интерфейс загрузчика данных для расчета доступности
type SnapshotLoader interface {
	Load(ctx context.Context, serviceID int64, rangeOf snapshot.RangeFunc, opts snapshot.Options) (*scheduling.Snapshot, error)
}

// MetricsRecorder интерфейс для учета запросов доступности
type MetricsRecorder interface {
	ObserveAvailabilityQuery(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
