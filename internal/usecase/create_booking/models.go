package create_booking

import (
	"time"

	"github.com/m04kA/SBM-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID  int64            // ID клиента (из заголовка аутентификации)
	SalonID   int64            // ID салона
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	Notes     *string          // Пожелания клиента
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64
	ClientID         int64
	SalonID          int64
	ServiceID        int64
	BookingDate      time.Time
	StartTime        types.TimeString
	DurationMinutes  int
	Status           string
	ConfirmationCode string
	Confirmation     string // Человекочитаемое подтверждение записи
	ServiceName      string
	ServicePrice     float64
	ClientName       *string
	ClientPhone      *string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
