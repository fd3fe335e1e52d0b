package get_treatment_history

import (
	"context"

	"github.com/m04kA/SBM-BookingService/internal/service/history"
)

type HistoryService interface {
	GetTreatmentHistory(ctx context.Context, clientID, userID int64) (*history.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
