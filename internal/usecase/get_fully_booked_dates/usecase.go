package get_fully_booked_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	"github.com/brambleappmatus/biztree-sub002/internal/scheduling"
	"github.com/brambleappmatus/biztree-sub002/internal/service/snapshot"
)

// QueryKind метка запроса в метриках
const QueryKind = "month"

// UseCase use case для получения полностью занятых дней месяца
type UseCase struct {
	loader  SnapshotLoader
	metrics MetricsRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader SnapshotLoader, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		loader:  loader,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case
// Данные (включая внешний календарь) загружаются один раз на весь месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFullyBookedDates: service=%d, month=%04d-%02d, people=%d",
		req.ServiceID, req.Year, int(req.Month), req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFullyBookedDates: validation failed: %v", err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ObserveAvailabilityQuery(QueryKind)
	}

	// 2. Загружаем данные за месяц
	snap, err := uc.loader.Load(ctx, req.ServiceID, func(loc *time.Location) domain.Interval {
		return scheduling.MonthRange(req.Year, req.Month, loc)
	}, snapshot.Options{})
	if err != nil {
		switch {
		case errors.Is(err, snapshot.ErrServiceNotFound):
			return nil, ErrServiceNotFound
		case errors.Is(err, snapshot.ErrBusinessNotFound):
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetFullyBookedDates: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 3. Проверяем каждый день месяца
	agg, err := scheduling.NewAggregator(snap, scheduling.Query{NumberOfPeople: req.NumberOfPeople})
	if err != nil {
		uc.logger.Error("GetFullyBookedDates: service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	dates := agg.FullyBookedDates(req.Year, req.Month)

	uc.logger.Info("GetFullyBookedDates: service=%d, %d fully booked days", req.ServiceID, len(dates))

	return &Response{
		ServiceID: req.ServiceID,
		Year:      req.Year,
		Month:     req.Month,
		Dates:     dates,
	}, nil
}
