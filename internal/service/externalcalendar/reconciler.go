package externalcalendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// Reconciler получает занятость бизнеса во внешнем календаре
// и отбрасывает события, созданные нашими же бронированиями.
type Reconciler struct {
	provider Provider
	cache    Cache
	cfg      Config
	metrics  MetricsRecorder
	logger   Logger
}

// NewReconciler создает сервис сверки. cache и metrics могут быть nil.
func NewReconciler(provider Provider, cache Cache, cfg Config, metrics MetricsRecorder, logger Logger) *Reconciler {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Policy == "" {
		cfg.Policy = PolicyOpen
	}
	return &Reconciler{
		provider: provider,
		cache:    cache,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
	}
}

// BusyWindows возвращает внешние занятые интервалы в диапазоне rng.
// Никогда не возвращает ошибку: сбой провайдера логируется и
// обрабатывается согласно политике (open - пусто, closed - весь диапазон).
func (r *Reconciler) BusyWindows(ctx context.Context, business *domain.Business, rng domain.Interval) []domain.ExternalBusyWindow {
	// Календарь не подключен - это штатная ситуация
	if business == nil || !business.HasCalendar() {
		r.observe(OutcomeSkipped)
		return []domain.ExternalBusyWindow{}
	}

	key := cacheKey(business.ID, rng)
	if r.cache != nil {
		if windows, ok := r.cache.Get(ctx, key); ok {
			r.observe(OutcomeCacheHit)
			return windows
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	raw, err := r.provider.ListBusyWindows(fetchCtx, business, rng)
	if err != nil {
		outcome := OutcomeFailure
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(fetchCtx.Err(), context.DeadlineExceeded) {
			outcome = OutcomeTimeout
		}
		r.observe(outcome)
		r.logger.Warn("BusyWindows: provider %s for business id=%d, applying policy=%s: %v",
			outcome, business.ID, r.cfg.Policy, err)
		return r.fallback(rng)
	}

	windows := filterWindows(raw, rng)
	r.observe(OutcomeSuccess)

	if r.cache != nil {
		r.cache.Set(ctx, key, windows)
	}

	if dropped := len(raw) - len(windows); dropped > 0 {
		r.logger.Info("BusyWindows: business id=%d, %d windows kept, %d dropped (self-origin or out of range)",
			business.ID, len(windows), dropped)
	}

	return windows
}

// Policy возвращает действующую политику отказа
func (r *Reconciler) Policy() FailurePolicy {
	return r.cfg.Policy
}

func (r *Reconciler) fallback(rng domain.Interval) []domain.ExternalBusyWindow {
	if r.cfg.Policy == PolicyClosed {
		return []domain.ExternalBusyWindow{{Interval: rng, SourceID: fallbackSourceID}}
	}
	return []domain.ExternalBusyWindow{}
}

func (r *Reconciler) observe(outcome string) {
	if r.metrics != nil {
		r.metrics.ObserveExternalFetch(outcome)
	}
}

// filterWindows оставляет валидные окна, пересекающиеся с rng и не созданные нами
func filterWindows(raw []domain.ExternalBusyWindow, rng domain.Interval) []domain.ExternalBusyWindow {
	windows := make([]domain.ExternalBusyWindow, 0, len(raw))
	for _, w := range raw {
		if w.IsSelfOrigin() || !w.Valid() {
			continue
		}
		if !domain.Overlaps(w.Interval, rng) {
			continue
		}
		windows = append(windows, w)
	}
	return windows
}

func cacheKey(businessID int64, rng domain.Interval) string {
	return fmt.Sprintf("busy:%d:%d:%d", businessID, rng.Start.Unix(), rng.End.Unix())
}
