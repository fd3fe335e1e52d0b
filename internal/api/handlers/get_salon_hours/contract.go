package get_salon_hours

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/service/hours"
)

type HoursService interface {
	GetSchedule(ctx context.Context, salonID int64) (*hours.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
