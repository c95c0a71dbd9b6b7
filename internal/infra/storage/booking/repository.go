package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	"github.com/brambleappmatus/biztree-sub002/pkg/dbmetrics"
	"github.com/brambleappmatus/biztree-sub002/pkg/psqlbuilder"
	"github.com/brambleappmatus/biztree-sub002/pkg/txmanager"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
//
// Пересечение брони на том же столе отсекает exclusion constraint в БД,
// такая ошибка (как и ошибка сериализации) возвращается обернутой в ErrConflict
// с сохранением исходной ошибки pq, чтобы менеджер транзакций мог повторить попытку.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"business_id",
			"service_id",
			"table_id",
			"start_time",
			"end_time",
			"status",
			"customer_name",
			"customer_email",
			"customer_phone",
			"number_of_people",
			"notes",
		).
		Values(
			booking.BusinessID,
			booking.ServiceID,
			booking.TableID,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.NumberOfPeople,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if txmanager.IsExclusionViolation(err) || txmanager.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: Create: %w", ErrConflict, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetOccupying получает занимающие слот бронирования бизнеса (PENDING, CONFIRMED, COMPLETED),
// пересекающиеся с интервалом rng. Режим календаря забронированной услуги подтягивается из services.
//
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы параллельное создание брони
// на тот же интервал дождалось завершения текущей транзакции.
func (r *Repository) GetOccupying(ctx context.Context, businessID int64, rng domain.Interval) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := occupyingQuery(businessID, rng, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupying - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: GetOccupying: %w", ErrConflict, err)
		}
		return nil, fmt.Errorf("%w: GetOccupying - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

func occupyingQuery(businessID int64, rng domain.Interval, forUpdate bool) squirrel.SelectBuilder {
	statuses := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		statuses[i] = string(s)
	}

	builder := psqlbuilder.Select(
		"b.id",
		"b.business_id",
		"b.service_id",
		"s.calendar_mode",
		"b.table_id",
		"b.start_time",
		"b.end_time",
		"b.status",
		"b.customer_name",
		"b.customer_email",
		"b.customer_phone",
		"b.number_of_people",
		"b.notes",
		"b.created_at",
		"b.updated_at",
	).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Where(squirrel.Eq{"b.business_id": businessID}).
		Where(squirrel.Eq{"b.status": statuses}).
		// полуоткрытые интервалы: [start, end) пересекается с [from, to)
		Where(squirrel.Lt{"b.start_time": rng.End}).
		Where(squirrel.Gt{"b.end_time": rng.Start}).
		OrderBy("b.start_time ASC", "b.id ASC")

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE OF b")
	}

	return builder
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var tableID sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.BusinessID,
			&booking.ServiceID,
			&booking.ServiceMode,
			&tableID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.CustomerName,
			&booking.CustomerEmail,
			&booking.CustomerPhone,
			&booking.NumberOfPeople,
			&booking.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if tableID.Valid {
			id := tableID.Int64
			booking.TableID = &id
		}
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows iteration: %v", ErrScanRow, err)
	}

	return bookings, nil
}
