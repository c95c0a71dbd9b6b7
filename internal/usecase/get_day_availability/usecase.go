package get_day_availability

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
const QueryKind = "day"

// UseCase use case для получения доступных слотов на день
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayAvailability: service=%d, date=%s, people=%d",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayAvailability: validation failed: %v", err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ObserveAvailabilityQuery(QueryKind)
	}

	// 2. Загружаем данные за сутки в часовом поясе бизнеса
	snap, err := uc.loader.Load(ctx, req.ServiceID, func(loc *time.Location) domain.Interval {
		return scheduling.DayRange(req.Date, loc)
	}, snapshot.Options{})
	if err != nil {
		switch {
		case errors.Is(err, snapshot.ErrServiceNotFound):
			return nil, ErrServiceNotFound
		case errors.Is(err, snapshot.ErrBusinessNotFound):
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetDayAvailability: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 3. Считаем свободные слоты
	agg, err := scheduling.NewAggregator(snap, scheduling.Query{NumberOfPeople: req.NumberOfPeople})
	if err != nil {
		uc.logger.Error("GetDayAvailability: service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	available := agg.AvailableSlots(req.Date)
	slots := make([]domain.Slot, 0, len(available))
	for _, iv := range available {
		slots = append(slots, domain.NewSlot(iv, snap.Location))
	}

	uc.logger.Info("GetDayAvailability: service=%d, mode=%s, %d slots available",
		req.ServiceID, agg.Resolver().Mode(), len(slots))

	return &Response{
		Date:            scheduling.DayRange(req.Date, snap.Location).Start,
		ServiceID:       req.ServiceID,
		DurationMinutes: snap.Service.EffectiveDurationMinutes(),
		HasAvailable:    len(slots) > 0,
		Slots:           slots,
	}, nil
}
