package domain

// Slot grid: фиксированная сетка кандидатов 08:00-20:00 с шагом 30 минут.
// Сетка не зависит от фактических рабочих окон салона: окно, открывающееся
// раньше 08:00 или закрывающееся позже 20:00, частично недостижимо.
const (
	SlotStepMinutes      = 30
	SlotGridStartMinutes = 8 * 60  // 08:00
	SlotGridEndMinutes   = 20 * 60 // 20:00, включительно как время начала
	DefaultLoyaltyRate   = 10.0    // рублей за один бонусный балл
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxWindowsPerWeekday        = 4
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот
// Используется при подсчёте конфликтов доступности
var InactiveStatuses = []BookingStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}
