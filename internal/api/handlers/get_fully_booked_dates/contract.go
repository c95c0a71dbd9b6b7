package get_fully_booked_dates

import (
	"context"

	getFullyBookedDates "github.com/brambleappmatus/biztree-sub002/internal/usecase/get_fully_booked_dates"
)

type GetFullyBookedDatesUseCase interface {
	Execute(ctx context.Context, req *getFullyBookedDates.Request) (*getFullyBookedDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
