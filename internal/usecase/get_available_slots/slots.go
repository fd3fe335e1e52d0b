package get_available_slots

import (
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/pkg/types"
)

// generateGridCandidates генерирует кандидатов фиксированной сетки на день.
// Сетка не зависит от рабочих часов салона: слоты идут с шагом
// domain.SlotStepMinutes от domain.SlotGridStartMinutes до
// domain.SlotGridEndMinutes включительно.
// Для сегодняшней даты кандидаты, чье начало уже в прошлом (с точностью
// до минуты), не попадают в выдачу вовсе
func generateGridCandidates(requestDate time.Time, now time.Time) []types.TimeString {
	candidates := make([]types.TimeString, 0)

	isToday := isSameDay(requestDate, now)
	nowMinutes := now.Hour()*60 + now.Minute()

	for m := domain.SlotGridStartMinutes; m <= domain.SlotGridEndMinutes; m += domain.SlotStepMinutes {
		if isToday && m < nowMinutes {
			continue
		}

		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			continue
		}
		candidates = append(candidates, slot)
	}

	return candidates
}

// calculateAvailability размечает кандидатов сетки флагом доступности.
// Слот доступен, когда интервал услуги целиком помещается хотя бы в одно
// окно рабочих часов И не пересекается ни с одним активным бронированием.
// Недоступные слоты не выбрасываются из выдачи - клиент видит всю сетку
func calculateAvailability(
	candidates []types.TimeString,
	durationMinutes int,
	windows []*domain.WorkingHoursWindow,
	bookings []*domain.Booking,
) []Slot {
	result := make([]Slot, len(candidates))

	for i, start := range candidates {
		available := false

		end, err := start.AddMinutes(durationMinutes)
		if err == nil {
			available = fitsWorkingHours(start, end, windows) &&
				!hasConflict(start, end, bookings)
		}

		result[i] = Slot{
			StartTime:       start,
			DurationMinutes: durationMinutes,
			Available:       available,
		}
	}

	return result
}

// fitsWorkingHours проверяет, что интервал [start, end) целиком помещается
// хотя бы в одно окно рабочих часов. Раздельные смены - это несколько окон:
// интервал, попадающий в перерыв между ними, не подходит
func fitsWorkingHours(start, end types.TimeString, windows []*domain.WorkingHoursWindow) bool {
	for _, window := range windows {
		if window.Contains(start, end) {
			return true
		}
	}
	return false
}

// hasConflict проверяет пересечение интервала [start, end) с активными
// бронированиями. Интервалы полуоткрытые: если бронирование заканчивается
// ровно там, где начинается слот (или наоборот) - это НЕ пересечение.
//
// Примеры:
// - Слот 11:30-12:00, бронирование 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Слот 11:30-12:00, бронирование 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, бронирование 12:00-12:30 → НЕТ пересечения (граничат)
func hasConflict(start, end types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		// Отмененные и неявки слот не занимают
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			continue
		}

		// Используем строгие неравенства, чтобы граничные случаи не считались пересечением
		if bookingStart.IsBefore(end) && bookingEnd.IsAfter(start) {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
