package get_fully_booked_dates

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_fully_booked_dates: service not found")

	// ErrBusinessNotFound возвращается, когда бизнес услуги не найден
	ErrBusinessNotFound = errors.New("get_fully_booked_dates: business not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_fully_booked_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_fully_booked_dates: internal error")
)
