package get_available_tables

import (
	"github.com/brambleappmatus/biztree-sub002/internal/domain"
	getAvailableTables "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_available_tables"
)

// AvailableTablesResponse HTTP response model
type AvailableTablesResponse struct {
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Tables    []Table `json:"tables"`
}

// Table модель свободного стола
type Table struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTables.Response, date string) *AvailableTablesResponse {
	tables := make([]Table, len(resp.Tables))
	for i, t := range resp.Tables {
		tables[i] = Table{ID: t.ID, Name: t.Name, Capacity: t.Capacity}
	}

	if date == "" {
		date = resp.Slot.Start.Format(domain.DateFormat)
	}

	return &AvailableTablesResponse{
		ServiceID: resp.ServiceID,
		Date:      date,
		StartTime: resp.Slot.StartTime.String(),
		EndTime:   resp.Slot.EndTime.String(),
		Tables:    tables,
	}
}
