package get_day_availability

import (
	"fmt"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.NumberOfPeople < 0 || req.NumberOfPeople > domain.MaxNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must be between 0 and %d", ErrInvalidInput, domain.MaxNumberOfPeople)
	}

	return nil
}
