package update_salon_hours

import (
	"github.com/m04kA/SBM-BookingService/internal/service/hours"
)

// WindowRequest одно окно рабочих часов
type WindowRequest struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// ReplaceWeekdayRequest тело запроса на замену расписания дня недели.
// Пустой список окон делает день выходным
type ReplaceWeekdayRequest struct {
	Weekday int             `json:"weekday"`
	Windows []WindowRequest `json:"windows"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервисного слоя
func (r *ReplaceWeekdayRequest) ToServiceRequest(salonID, userID int64) *hours.ReplaceWeekdayRequest {
	windows := make([]hours.WindowRequest, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, hours.WindowRequest{
			OpenTime:  w.OpenTime,
			CloseTime: w.CloseTime,
		})
	}

	return &hours.ReplaceWeekdayRequest{
		UserID:  userID,
		SalonID: salonID,
		Weekday: r.Weekday,
		Windows: windows,
	}
}
