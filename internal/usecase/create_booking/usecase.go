package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	bookingRepo "github.com/brambleappmatus/biztree-sub002/internal/infra/storage/booking"
	"github.com/brambleappmatus/biztree-sub002/internal/scheduling"
	"github.com/brambleappmatus/biztree-sub002/internal/service/snapshot"
	"github.com/brambleappmatus/biztree-sub002/pkg/ptr"
	"github.com/brambleappmatus/biztree-sub002/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	loader      SnapshotLoader
	bookingRepo BookingRepository
	txManager   TransactionManager
	pusher      CalendarPusher
	metrics     MetricsRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// pusher может быть nil, тогда брони не публикуются во внешний календарь.
func NewUseCase(
	loader SnapshotLoader,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	pusher CalendarPusher,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		loader:      loader,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		pusher:      pusher,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, date=%s, time=%s, people=%d",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	people := req.NumberOfPeople
	if people == 0 {
		people = 1
	}
	query := scheduling.Query{NumberOfPeople: people}

	// 2. Загружаем снимок вне транзакции (внешний календарь не держит блокировки)
	var dayRange domain.Interval
	snap, err := uc.loader.Load(ctx, req.ServiceID, func(loc *time.Location) domain.Interval {
		dayRange = scheduling.DayRange(req.Date, loc)
		return dayRange
	}, snapshot.Options{})
	if err != nil {
		switch {
		case errors.Is(err, snapshot.ErrServiceNotFound):
			return nil, ErrServiceNotFound
		case errors.Is(err, snapshot.ErrBusinessNotFound):
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to load snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	agg, err := scheduling.NewAggregator(snap, query)
	if err != nil {
		uc.logger.Error("CreateBooking: service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Слот должен совпадать с ячейкой сетки рабочего дня
	start, err := req.StartTime.On(dayRange.Start, snap.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	slot := domain.NewInterval(start, snap.Service.EffectiveDuration())

	if !agg.Grid(req.Date).Contains(slot) {
		uc.logger.Warn("CreateBooking: slot %s is off the grid of %s", req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: slot is outside working hours", ErrSlotNotAvailable)
	}

	// 4. Предварительная проверка без блокировок
	if verdict := agg.Resolver().Check(slot); verdict != scheduling.Available {
		return nil, uc.reject(verdict)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Повторная проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перечитываем бронирования с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetOccupying(txCtx, snap.Business.ID, dayRange)
		if err != nil {
			return fmt.Errorf("get occupying bookings: %w", err)
		}

		fresh := *snap
		fresh.Bookings = bookings

		resolver, err := scheduling.NewResolver(&fresh, query)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// 5.2. Проверяем слот на свежих данных
		if verdict := resolver.Check(slot); verdict != scheduling.Available {
			return uc.reject(verdict)
		}

		booking := &domain.Booking{
			BusinessID:     snap.Business.ID,
			ServiceID:      snap.Service.ID,
			ServiceMode:    snap.Service.CalendarMode,
			StartTime:      slot.Start,
			EndTime:        slot.End,
			Status:         domain.StatusConfirmed,
			CustomerName:   strings.TrimSpace(req.CustomerName),
			CustomerEmail:  req.CustomerEmail,
			CustomerPhone:  req.CustomerPhone,
			NumberOfPeople: people,
			Notes:          req.Notes,
		}

		// 5.3. Выбираем наименьший подходящий стол
		if resolver.Mode() == scheduling.ModeTablePool {
			free := resolver.FreeTables(slot, people)
			if len(free) == 0 {
				return uc.reject(scheduling.Occupied)
			}
			booking.TableID = ptr.Ptr(free[0].ID)
		}

		// 5.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapTxError(err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 6. Публикуем бронь во внешний календарь (ошибки только логируются)
	uc.push(ctx, snap, result)

	return &Response{
		ID:             result.ID,
		BusinessID:     result.BusinessID,
		ServiceID:      result.ServiceID,
		Date:           dayRange.Start,
		Slot:           domain.NewSlot(result.Interval(), snap.Location),
		Status:         result.Status,
		TableID:        result.TableID,
		NumberOfPeople: result.NumberOfPeople,
		CustomerName:   result.CustomerName,
		CustomerEmail:  result.CustomerEmail,
		CustomerPhone:  result.CustomerPhone,
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// reject переводит отрицательный вердикт в ошибку usecase
func (uc *UseCase) reject(verdict scheduling.Verdict) error {
	uc.logger.Warn("CreateBooking: slot rejected: %s", verdict)

	if verdict == scheduling.Occupied {
		uc.observeConflict(ConflictOccupied)
		return fmt.Errorf("%w: %s", ErrSlotTaken, verdict)
	}
	return fmt.Errorf("%w: %s", ErrSlotNotAvailable, verdict)
}

// mapTxError разбирает ошибку транзакции
func (uc *UseCase) mapTxError(err error) error {
	switch {
	case errors.Is(err, ErrSlotTaken), errors.Is(err, ErrSlotNotAvailable), errors.Is(err, ErrInternal):
		return err
	case errors.Is(err, txmanager.ErrSerializationFailure):
		uc.logger.Warn("CreateBooking: serialization retries exhausted: %v", err)
		uc.observeConflict(ConflictSerialization)
		return fmt.Errorf("%w: concurrent booking", ErrSlotTaken)
	case errors.Is(err, bookingRepo.ErrConflict):
		uc.logger.Warn("CreateBooking: booking overlaps on the same table: %v", err)
		uc.observeConflict(ConflictExclusion)
		return fmt.Errorf("%w: concurrent booking", ErrSlotTaken)
	}

	uc.logger.Error("CreateBooking: transaction failed: %v", err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func (uc *UseCase) observeConflict(reason string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBookingConflict(reason)
	}
}

func (uc *UseCase) push(ctx context.Context, snap *scheduling.Snapshot, booking *domain.Booking) {
	if uc.pusher == nil || !snap.Business.HasCalendar() {
		return
	}

	summary := fmt.Sprintf("%s: %s", snap.Service.Name, booking.CustomerName)
	if err := uc.pusher.InsertBookingEvent(context.WithoutCancel(ctx), snap.Business, booking, summary); err != nil {
		uc.logger.Warn("CreateBooking: failed to push booking id=%d to calendar of business id=%d: %v",
			booking.ID, snap.Business.ID, err)
	}
}
