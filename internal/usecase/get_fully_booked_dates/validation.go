package get_fully_booked_dates

import (
	"fmt"
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
)

const (
	minYear = 1970
	maxYear = 9999
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Year < minYear || req.Year > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, minYear, maxYear)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	if req.NumberOfPeople < 0 || req.NumberOfPeople > domain.MaxNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must be between 0 and %d", ErrInvalidInput, domain.MaxNumberOfPeople)
	}

	return nil
}
