package get_day_availability

import (
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// Request модель запроса доступных слотов на день
type Request struct {
	ServiceID      int64     // ID услуги
	Date           time.Time // Календарная дата (время игнорируется)
	NumberOfPeople int       // Количество гостей (0 - не указано)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time     // Полночь даты в часовом поясе бизнеса
	ServiceID       int64         // ID услуги
	DurationMinutes int           // Длительность слота в минутах
	HasAvailable    bool          // Есть ли хотя бы один свободный слот
	Slots           []domain.Slot // Свободные слоты по возрастанию начала
}
