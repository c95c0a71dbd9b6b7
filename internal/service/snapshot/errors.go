package snapshot

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("snapshot: service not found")

	// ErrBusinessNotFound возвращается, когда бизнес услуги не найден
	ErrBusinessNotFound = errors.New("snapshot: business not found")

	// ErrInternal возвращается при ошибках чтения данных
	ErrInternal = errors.New("snapshot: internal error")
)
