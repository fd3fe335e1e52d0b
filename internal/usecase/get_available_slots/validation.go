package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата подходит для записи
func validateDate(requestDate time.Time, now time.Time) error {
	if isDateInPast(requestDate, now) {
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
