package create_booking

import (
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	"github.com/brambleappmatus/biztree-sub002/pkg/types"
)

// Причины конфликтов в метриках
const (
	ConflictOccupied      = "occupied"
	ConflictExclusion     = "exclusion"
	ConflictSerialization = "serialization"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	NumberOfPeople int              // Количество гостей (0 - один)
	CustomerName   string           // Имя клиента
	CustomerEmail  *string          // Email (опционально)
	CustomerPhone  *string          // Телефон (опционально)
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	BusinessID     int64
	ServiceID      int64
	Date           time.Time   // Полночь даты брони в часовом поясе бизнеса
	Slot           domain.Slot // Интервал в часовом поясе бизнеса
	Status         domain.BookingStatus
	TableID        *int64
	NumberOfPeople int
	CustomerName   string
	CustomerEmail  *string
	CustomerPhone  *string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
