package googlecalendar

import "errors"

var (
	// ErrNoCredentials возвращается, когда у бизнеса не подключен календарь
	ErrNoCredentials = errors.New("googlecalendar client: calendar is not connected")

	// ErrUnauthorized возвращается, когда токен отозван или недействителен
	ErrUnauthorized = errors.New("googlecalendar client: unauthorized")

	// ErrRequest возвращается при ошибке запроса к Google Calendar API
	ErrRequest = errors.New("googlecalendar client: request failed")

	// ErrInvalidResponse возвращается, когда событие не удалось разобрать
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")
)
