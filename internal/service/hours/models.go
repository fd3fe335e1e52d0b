package hours

import (
	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// WindowRequest одно окно рабочих часов в запросе
type WindowRequest struct {
	OpenTime  string `json:"openTime"`  // "09:00"
	CloseTime string `json:"closeTime"` // "18:00"
}

// ReplaceWeekdayRequest запрос на замену расписания одного дня недели.
// Пустой список окон делает день выходным
type ReplaceWeekdayRequest struct {
	UserID  int64           `json:"userId"`
	SalonID int64           `json:"salonId"`
	Weekday int             `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	Windows []WindowRequest `json:"windows"`
}

// WindowResponse одно окно рабочих часов в ответе
type WindowResponse struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// ScheduleResponse расписание салона, сгруппированное по дням недели.
// Ключи - дни недели 0..6, дни без окон - выходные
type ScheduleResponse struct {
	SalonID int64                    `json:"salonId"`
	Days    map[int][]WindowResponse `json:"days"`
}

// fromDomainWindows группирует окна по дням недели
func fromDomainWindows(salonID int64, windows []*domain.WorkingHoursWindow) *ScheduleResponse {
	resp := &ScheduleResponse{
		SalonID: salonID,
		Days:    make(map[int][]WindowResponse),
	}

	for _, window := range windows {
		day := int(window.Weekday)
		resp.Days[day] = append(resp.Days[day], WindowResponse{
			OpenTime:  window.OpenTime.String(),
			CloseTime: window.CloseTime.String(),
		})
	}

	return resp
}
