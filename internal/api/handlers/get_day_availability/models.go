package get_day_availability

import (
	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	getDayAvailability "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_day_availability"
)

// DayAvailabilityResponse HTTP response model
type DayAvailabilityResponse struct {
	Date            string `json:"date"`
	ServiceID       int64  `json:"serviceId"`
	DurationMinutes int    `json:"durationMinutes"`
	HasAvailable    bool   `json:"hasAvailable"`
	Slots           []Slot `json:"slots"`
}

// Slot модель свободного слота
type Slot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayAvailability.Response) *DayAvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &DayAvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		HasAvailable:    resp.HasAvailable,
		Slots:           slots,
	}
}
