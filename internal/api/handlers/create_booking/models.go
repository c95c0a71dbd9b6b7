package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	createBooking "github.com/brambleappmatus/biztree-sub002/internal/usecase/create_booking"
	"github.com/brambleappmatus/biztree-sub002/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID      int64   `json:"serviceId"`
	Date           string  `json:"date"`      // "2025-10-15"
	StartTime      string  `json:"startTime"` // "10:00"
	NumberOfPeople int     `json:"numberOfPeople,omitempty"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  *string `json:"customerEmail,omitempty"`
	CustomerPhone  *string `json:"customerPhone,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	BusinessID     int64   `json:"businessId"`
	ServiceID      int64   `json:"serviceId"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Status         string  `json:"status"`
	TableID        *int64  `json:"tableId,omitempty"`
	NumberOfPeople int     `json:"numberOfPeople"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  *string `json:"customerEmail,omitempty"`
	CustomerPhone  *string `json:"customerPhone,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// errInvalidDate и errInvalidTime различают ошибки разбора запроса
var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createBooking.Request{
		ServiceID:      r.ServiceID,
		Date:           date,
		StartTime:      startTime,
		NumberOfPeople: r.NumberOfPeople,
		CustomerName:   r.CustomerName,
		CustomerEmail:  r.CustomerEmail,
		CustomerPhone:  r.CustomerPhone,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		BusinessID:     resp.BusinessID,
		ServiceID:      resp.ServiceID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.Slot.StartTime.String(),
		EndTime:        resp.Slot.EndTime.String(),
		Status:         string(resp.Status),
		TableID:        resp.TableID,
		NumberOfPeople: resp.NumberOfPeople,
		CustomerName:   resp.CustomerName,
		CustomerEmail:  resp.CustomerEmail,
		CustomerPhone:  resp.CustomerPhone,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
