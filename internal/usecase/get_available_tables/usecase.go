package get_available_tables

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	"github.com/brambleappmatus/biztree-sub002/internal/scheduling"
	"github.com/brambleappmatus/biztree-sub002/internal/service/snapshot"
)

// UseCase use case для получения свободных столов на интервал
type UseCase struct {
	loader SnapshotLoader
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader SnapshotLoader, logger Logger) *UseCase {
	return &UseCase{
		loader: loader,
		logger: logger,
	}
}

// Execute выполняет use case
// Учитывается только занятость столов бронированиями: рабочие часы,
// внешний календарь и вместимость здесь не проверяются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTables: service=%d, date=%s, time=%s, duration=%d",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTables: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем бронирования с запасом на максимальную длительность
	snap, err := uc.loader.Load(ctx, req.ServiceID, func(loc *time.Location) domain.Interval {
		day := scheduling.DayRange(req.Date, loc)
		day.End = day.End.Add(domain.MaxDurationMinutes * time.Minute)
		return day
	}, snapshot.Options{SkipExternal: true})
	if err != nil {
		switch {
		case errors.Is(err, snapshot.ErrServiceNotFound):
			return nil, ErrServiceNotFound
		case errors.Is(err, snapshot.ErrBusinessNotFound):
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableTables: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 3. Строим интервал в часовом поясе бизнеса
	start, err := req.StartTime.On(scheduling.DayRange(req.Date, snap.Location).Start, snap.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	duration := snap.Service.EffectiveDuration()
	if req.DurationMinutes > 0 {
		duration = time.Duration(req.DurationMinutes) * time.Minute
	}
	slot := domain.NewInterval(start, duration)

	resolver, err := scheduling.NewResolver(snap, scheduling.Query{})
	if err != nil {
		uc.logger.Error("GetAvailableTables: service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	tables := resolver.FreeTables(slot, 0)

	uc.logger.Info("GetAvailableTables: service=%d, %d of %d tables free",
		req.ServiceID, len(tables), len(snap.Tables))

	return &Response{
		ServiceID: req.ServiceID,
		Slot:      domain.NewSlot(slot, snap.Location),
		Tables:    tables,
	}, nil
}
