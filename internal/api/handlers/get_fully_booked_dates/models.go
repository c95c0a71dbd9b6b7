package get_fully_booked_dates

import (
	getFullyBookedDates "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_fully_booked_dates"
)

// FullyBookedDatesResponse HTTP response model
type FullyBookedDatesResponse struct {
	ServiceID int64    `json:"serviceId"`
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	Dates     []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFullyBookedDates.Response) *FullyBookedDatesResponse {
	dates := resp.Dates
	if dates == nil {
		dates = []string{}
	}
	return &FullyBookedDatesResponse{
		ServiceID: resp.ServiceID,
		Year:      resp.Year,
		Month:     int(resp.Month),
		Dates:     dates,
	}
}
