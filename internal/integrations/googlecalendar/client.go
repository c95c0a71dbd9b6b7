package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// eventNamespace пространство имен для детерминированных ID событий
var eventNamespace = uuid.MustParse("6f1c2a8e-3d4b-4c7a-9e51-2b8d0f7a4c13")

// Client клиент Google Calendar API от имени бизнеса
type Client struct {
	oauth      *oauth2.Config
	markerKey  string
	limiter    *rate.Limiter
	store      TokenStore
	httpClient *http.Client
	endpoint   string
	defaultLoc *time.Location
	log        Logger
}

// NewClient создает новый экземпляр клиента Google Calendar
func NewClient(cfg Config, store TokenStore, log Logger) *Client {
	endpoint := google.Endpoint
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	markerKey := cfg.MarkerKey
	if markerKey == "" {
		markerKey = domain.DefaultMarkerKey
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	loc := cfg.DefaultLocation
	if loc == nil {
		loc = time.UTC
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			Scopes:       []string{calendar.CalendarEventsScope},
		},
		markerKey:  markerKey,
		limiter:    rate.NewLimiter(limit, burst),
		store:      store,
		httpClient: httpClient,
		endpoint:   cfg.Endpoint,
		defaultLoc: loc,
		log:        log,
	}
}

// MarkerKey возвращает ключ маркера собственных событий
func (c *Client) MarkerKey() string {
	return c.markerKey
}

// ListBusyWindows получает непрозрачные, не отмененные события календаря в диапазоне rng.
// Маркер из private extended properties переносится в Marker, фильтрация выполняется выше.
func (c *Client) ListBusyWindows(ctx context.Context, business *domain.Business, rng domain.Interval) ([]domain.ExternalBusyWindow, error) {
	svc, err := c.service(ctx, business)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %w", ErrRequest, err)
	}

	loc := business.Location(c.defaultLoc)
	windows := make([]domain.ExternalBusyWindow, 0)

	call := svc.Events.List(business.Calendar.CalendarIDOrDefault()).
		TimeMin(rng.Start.Format(time.RFC3339)).
		TimeMax(rng.End.Format(time.RFC3339)).
		SingleEvents(true).
		ShowDeleted(false).
		MaxResults(pageSize)

	err = call.Pages(ctx, func(page *calendar.Events) error {
		for _, ev := range page.Items {
			if ev.Status == eventStatusCancelled || ev.Transparency == transparencyTransparent {
				continue
			}
			iv, err := eventInterval(ev, loc)
			if err != nil {
				c.log.Warn("ListBusyWindows: skipping event id=%s of business id=%d: %v", ev.Id, business.ID, err)
				continue
			}
			windows = append(windows, domain.ExternalBusyWindow{
				Interval: iv,
				SourceID: ev.Id,
				Marker:   c.marker(ev),
			})
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	return windows, nil
}

// InsertBookingEvent создает событие брони в календаре бизнеса с маркером bookingId.
// ID события детерминирован, повторная вставка той же брони не создает дубль.
func (c *Client) InsertBookingEvent(ctx context.Context, business *domain.Business, booking *domain.Booking, summary string) error {
	svc, err := c.service(ctx, business)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %w", ErrRequest, err)
	}

	event := &calendar.Event{
		Id:           EventID(booking.ID),
		Summary:      summary,
		Transparency: transparencyOpaque,
		Start:        &calendar.EventDateTime{DateTime: booking.StartTime.Format(time.RFC3339)},
		End:          &calendar.EventDateTime{DateTime: booking.EndTime.Format(time.RFC3339)},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{c.markerKey: strconv.FormatInt(booking.ID, 10)},
		},
	}

	_, err = svc.Events.Insert(business.Calendar.CalendarIDOrDefault(), event).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict {
			return nil
		}
		return classify(err)
	}

	return nil
}

// EventID детерминированный ID события Google для брони (base32hex совместимый)
func EventID(bookingID int64) string {
	id := uuid.NewSHA1(eventNamespace, []byte("booking:"+strconv.FormatInt(bookingID, 10)))
	return strings.ReplaceAll(id.String(), "-", "")
}

func (c *Client) service(ctx context.Context, business *domain.Business) (*calendar.Service, error) {
	if business == nil || !business.HasCalendar() {
		return nil, ErrNoCredentials
	}

	// базовый http клиент используется и для обновления токена
	octx := context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	ts := oauth2.ReuseTokenSource(nil, &persistingTokenSource{
		base:       c.oauth.TokenSource(octx, tokenFromCredentials(business.Calendar)),
		businessID: business.ID,
		calendarID: business.Calendar.CalendarID,
		store:      c.store,
		log:        c.log,
		last:       business.Calendar.AccessToken,
	})

	opts := []option.ClientOption{option.WithHTTPClient(oauth2.NewClient(octx, ts))}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create calendar service: %v", ErrInternal, err)
	}
	return svc, nil
}

func (c *Client) marker(ev *calendar.Event) string {
	if ev.ExtendedProperties == nil {
		return ""
	}
	return ev.ExtendedProperties.Private[c.markerKey]
}

// eventInterval разбирает границы события; all-day события
// интерпретируются в часовом поясе бизнеса
func eventInterval(ev *calendar.Event, loc *time.Location) (domain.Interval, error) {
	if ev.Start == nil || ev.End == nil {
		return domain.Interval{}, fmt.Errorf("%w: event without bounds", ErrInvalidResponse)
	}
	start, err := parseEventTime(ev.Start, loc)
	if err != nil {
		return domain.Interval{}, err
	}
	end, err := parseEventTime(ev.End, loc)
	if err != nil {
		return domain.Interval{}, err
	}
	iv := domain.Interval{Start: start, End: end}
	if !iv.Valid() {
		return domain.Interval{}, fmt.Errorf("%w: end is not after start", ErrInvalidResponse)
	}
	return iv, nil
}

func parseEventTime(t *calendar.EventDateTime, loc *time.Location) (time.Time, error) {
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: dateTime %q: %v", ErrInvalidResponse, t.DateTime, err)
		}
		return parsed, nil
	}
	if t.Date != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, t.Date, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: date %q: %v", ErrInvalidResponse, t.Date, err)
		}
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("%w: empty event time", ErrInvalidResponse)
}

// classify приводит ошибки API и oauth2 к ошибкам пакета
func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return fmt.Errorf("%w: status %d: %v", ErrRequest, apiErr.Code, err)
	}
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: token refresh: %v", ErrUnauthorized, err)
	}
	return fmt.Errorf("%w: %w", ErrRequest, err)
}
