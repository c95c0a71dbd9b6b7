package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	businessRepo "github.com/brambleappmatus/biztree-sub002/internal/infra/storage/business"
	serviceRepo "github.com/brambleappmatus/biztree-sub002/internal/infra/storage/service"
	"github.com/brambleappmatus/biztree-sub002/internal/scheduling"
	"github.com/brambleappmatus/biztree-sub002/pkg/dbmetrics"
)

// Loader собирает согласованный снимок данных для расчета доступности
type Loader struct {
	serviceRepo  ServiceRepository
	businessRepo BusinessRepository
	tableRepo    TableRepository
	bookingRepo  BookingRepository
	busyWindows  BusyWindowSource
	defaultLoc   *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewLoader создает новый экземпляр загрузчика снимков
func NewLoader(
	serviceRepo ServiceRepository,
	businessRepo BusinessRepository,
	tableRepo TableRepository,
	bookingRepo BookingRepository,
	busyWindows BusyWindowSource,
	defaultLoc *time.Location,
	logger Logger,
) *Loader {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &Loader{
		serviceRepo:  serviceRepo,
		businessRepo: businessRepo,
		tableRepo:    tableRepo,
		bookingRepo:  bookingRepo,
		busyWindows:  busyWindows,
		defaultLoc:   defaultLoc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (l *Loader) WithTimeProvider(tp TimeProvider) *Loader {
	l.timeProvider = tp
	return l
}

// Load загружает услугу, бизнес и затем параллельно: рабочие часы, столы,
// бронирования и занятость внешнего календаря за интервал rangeOf(loc).
func (l *Loader) Load(ctx context.Context, serviceID int64, rangeOf RangeFunc, opts Options) (*scheduling.Snapshot, error) {
	// 1. Услуга
	service, err := l.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			l.logger.Warn("Load: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		l.logger.Error("Load: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 2. Бизнес (нужен для часового пояса и подключения календаря)
	business, err := l.businessRepo.GetByID(ctx, service.BusinessID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			l.logger.Warn("Load: business id=%d of service id=%d not found", service.BusinessID, serviceID)
			return nil, ErrBusinessNotFound
		}
		l.logger.Error("Load: failed to get business id=%d: %v", service.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	loc := business.Location(l.defaultLoc)
	rng := rangeOf(loc)

	snap := &scheduling.Snapshot{
		Service:     service,
		Business:    business,
		Location:    loc,
		BusyWindows: []domain.ExternalBusyWindow{},
	}

	// 3. Независимые чтения выполняются параллельно
	g, gctx := errgroup.WithContext(ctx)
	if dbmetrics.IsInTransaction(ctx) {
		// одно соединение транзакции нельзя использовать конкурентно
		g.SetLimit(1)
	}

	g.Go(func() error {
		hours, err := l.businessRepo.GetWorkingHours(gctx, business.ID)
		if err != nil {
			return fmt.Errorf("get working hours: %w", err)
		}
		snap.Schedule = domain.NewWeeklySchedule(hours)
		return nil
	})

	g.Go(func() error {
		tables, err := l.tableRepo.GetByBusiness(gctx, business.ID)
		if err != nil {
			return fmt.Errorf("get tables: %w", err)
		}
		snap.Tables = tables
		return nil
	})

	g.Go(func() error {
		bookings, err := l.bookingRepo.GetOccupying(gctx, business.ID, rng)
		if err != nil {
			return fmt.Errorf("get bookings: %w", err)
		}
		snap.Bookings = bookings
		return nil
	})

	if !opts.SkipExternal && l.busyWindows != nil {
		g.Go(func() error {
			snap.BusyWindows = l.busyWindows.BusyWindows(gctx, business, rng)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.logger.Error("Load: failed to load snapshot for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	snap.Now = l.timeProvider.Now()

	return snap, nil
}
