package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, string(req.StartTime))
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateBookingStart проверяет, что момент начала записи не в прошлом
func validateBookingStart(date time.Time, startTime types.TimeString, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	if dateOnly.After(nowOnly) {
		return nil
	}

	// Сегодняшняя дата: сравниваем время начала с текущим с точностью до минуты
	currentTime := types.NewTimeString(now)
	if startTime.IsBefore(currentTime) {
		return ErrInvalidDate
	}

	return nil
}

// validateService проверяет, что услуга принадлежит салону и доступна для записи
func validateService(treatment *domain.Treatment, salonID int64) error {
	if treatment.SalonID != salonID {
		return ErrServiceNotInSalon
	}
	if !treatment.IsBookable() {
		return ErrServiceNotFound
	}
	return nil
}
