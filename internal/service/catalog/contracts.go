package catalog

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

type CatalogRepository interface {
	GetBySalon(ctx context.Context, salonID int64, visibleOnly bool) ([]*domain.Treatment, error)
}

type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
