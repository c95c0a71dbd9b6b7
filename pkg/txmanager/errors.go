package txmanager

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrTransaction ошибка начала/фиксации транзакции
	ErrTransaction = errors.New("txmanager: transaction error")

	// ErrSerializationFailure транзакция не смогла зафиксироваться после всех повторов
	ErrSerializationFailure = errors.New("txmanager: serialization failure, retries exhausted")
)

const (
	// SQLSTATE коды PostgreSQL
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeExclusionViolation   = "23P01"
)

// IsSerializationFailure true, если ошибка вызвана конфликтом сериализации или дедлоком
func IsSerializationFailure(err error) bool {
	code := pqCode(err)
	return code == codeSerializationFailure || code == codeDeadlockDetected
}

// IsExclusionViolation true, если сработало exclusion-ограничение (пересечение броней)
func IsExclusionViolation(err error) bool {
	return pqCode(err) == codeExclusionViolation
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
