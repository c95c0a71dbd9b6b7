package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrBusinessNotFound возвращается, когда бизнес услуги не найден
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrSlotNotAvailable возвращается, когда слот никогда не был доступен:
	// вне сетки или рабочих часов, в прошлом, занят во внешнем календаре
	// или нет стола нужной вместимости
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSlotTaken возвращается, когда слот был занят другой бронью
	// (в том числе параллельной транзакцией)
	ErrSlotTaken = errors.New("create_booking: slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
