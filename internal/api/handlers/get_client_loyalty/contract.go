package get_client_loyalty

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/service/loyalty"
)

type LoyaltyService interface {
	GetBalance(ctx context.Context, clientID, salonID, userID int64) (*loyalty.BalanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
