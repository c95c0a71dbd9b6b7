package table

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	"github.com/brambleappmatus/biztree-sub002/pkg/dbmetrics"
	"github.com/brambleappmatus/biztree-sub002/pkg/psqlbuilder"
)

// Repository репозиторий столов бизнеса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusiness получает все столы бизнеса, отсортированные по вместимости и ID
func (r *Repository) GetByBusiness(ctx context.Context, businessID int64) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"name",
		"capacity",
	).
		From("business_tables").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("capacity ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.BusinessID, &t.Name, &t.Capacity); err != nil {
			return nil, fmt.Errorf("%w: GetByBusiness - scan row: %v", ErrScanRow, err)
		}
		tables = append(tables, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - rows iteration: %v", ErrScanRow, err)
	}

	return tables, nil
}
