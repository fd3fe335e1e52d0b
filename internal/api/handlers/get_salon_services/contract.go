package get_salon_services

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/service/catalog"
)

type CatalogService interface {
	GetSalonServices(ctx context.Context, salonID int64) (*catalog.TreatmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
