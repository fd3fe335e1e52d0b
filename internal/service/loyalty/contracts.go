package loyalty

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// LoyaltyRepository интерфейс репозитория журнала бонусных баллов
type LoyaltyRepository interface {
	Insert(ctx context.Context, entry *domain.LoyaltyEntry) (*domain.LoyaltyEntry, error)
	GetBalance(ctx context.Context, clientID, salonID int64) (int64, error)
	GetEntries(ctx context.Context, clientID, salonID int64) ([]*domain.LoyaltyEntry, error)
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
