package get_available_tables

import (
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	"github.com/brambleappmatus/biztree-sub002/pkg/types"
)

// Request модель запроса свободных столов
type Request struct {
	ServiceID       int64            // ID услуги
	Date            time.Time        // Календарная дата
	StartTime       types.TimeString // Время начала (например, "19:00")
	DurationMinutes int              // Длительность (0 - длительность услуги)
}

// Response модель ответа со списком свободных столов
type Response struct {
	ServiceID int64
	Slot      domain.Slot     // Проверенный интервал
	Tables    []*domain.Table // По возрастанию вместимости, затем ID
}
