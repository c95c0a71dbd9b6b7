package get_fully_booked_dates

import "time"

// Request модель запроса полностью занятых дней месяца
type Request struct {
	ServiceID      int64      // ID услуги
	Year           int        // Год
	Month          time.Month // Месяц (1-12)
	NumberOfPeople int        // Количество гостей (0 - не указано)
}

// Response модель ответа со списком дат без свободных слотов
type Response struct {
	ServiceID int64
	Year      int
	Month     time.Month
	Dates     []string // Даты в формате YYYY-MM-DD по возрастанию
}
