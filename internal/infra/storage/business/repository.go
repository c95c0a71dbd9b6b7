package business

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	"github.com/brambleappmatus/biztree-sub002/pkg/dbmetrics"
	"github.com/brambleappmatus/biztree-sub002/pkg/psqlbuilder"
)

// Repository репозиторий бизнесов и их расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бизнес по ID вместе с подключением Google Calendar (если есть)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"timezone",
		"allow_concurrent_services",
		"google_access_token",
		"google_refresh_token",
		"google_token_expiry",
		"google_calendar_id",
	).
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var business domain.Business
	var accessToken, refreshToken, calendarID sql.NullString
	var expiry sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&business.ID,
		&business.Name,
		&business.Timezone,
		&business.AllowConcurrentServices,
		&accessToken,
		&refreshToken,
		&expiry,
		&calendarID,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan business: %v", ErrScanRow, err)
	}

	// Календарь считается подключенным, если есть хотя бы один токен
	if accessToken.String != "" || refreshToken.String != "" {
		business.Calendar = &domain.CalendarCredentials{
			AccessToken:  accessToken.String,
			RefreshToken: refreshToken.String,
			Expiry:       expiry.Time,
			CalendarID:   calendarID.String,
		}
	}

	return &business, nil
}

// GetWorkingHours получает рабочие часы бизнеса по дням недели
func (r *Repository) GetWorkingHours(ctx context.Context, businessID int64) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"business_id",
		"day_of_week",
		"open_time",
		"close_time",
		"is_closed",
	).
		From("working_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("day_of_week ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.WorkingHours, 0, 7)
	for rows.Next() {
		var h domain.WorkingHours
		if err := rows.Scan(&h.BusinessID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.IsClosed); err != nil {
			return nil, fmt.Errorf("%w: GetWorkingHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - rows iteration: %v", ErrScanRow, err)
	}

	return hours, nil
}

// UpdateCalendarToken сохраняет обновленный OAuth токен Google Calendar
func (r *Repository) UpdateCalendarToken(ctx context.Context, businessID int64, creds *domain.CalendarCredentials) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := calendarTokenUpdate(businessID, creds).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateCalendarToken - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateCalendarToken - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateCalendarToken - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}

func calendarTokenUpdate(businessID int64, creds *domain.CalendarCredentials) squirrel.UpdateBuilder {
	builder := psqlbuilder.Update("businesses").
		Set("google_access_token", creds.AccessToken).
		Set("google_token_expiry", creds.Expiry).
		Set("updated_at", squirrel.Expr("NOW()"))

	// Google не всегда возвращает refresh token при обновлении
	if creds.RefreshToken != "" {
		builder = builder.Set("google_refresh_token", creds.RefreshToken)
	}

	return builder.Where(squirrel.Eq{"id": businessID})
}
