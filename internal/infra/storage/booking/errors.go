package booking

import "errors"

var (
	// ErrConflict возвращается, когда вставка конфликтует с параллельной транзакцией
	// (exclusion constraint или ошибка сериализации)
	ErrConflict = errors.New("booking.repository: conflicting booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
