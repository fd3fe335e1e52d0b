package hours

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/pkg/dbmetrics"
)

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	GetBySalon(ctx context.Context, salonID int64) ([]*domain.WorkingHoursWindow, error)
	ReplaceForWeekday(ctx context.Context, salonID int64, weekday time.Weekday, windows []*domain.WorkingHoursWindow) error
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// TxBeginner интерфейс для начала транзакций
// Поддерживает *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
