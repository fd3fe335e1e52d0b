package hours

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	salonRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/salon"
	"github.com/m04kA/SBM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SBM-BookingService/pkg/types"
)

// Service сервис расписания рабочих часов салона
type Service struct {
	hoursRepo  HoursRepository
	salonRepo  SalonRepository
	txBeginner TxBeginner
	logger     Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(hoursRepo HoursRepository, salonRepo SalonRepository, txBeginner TxBeginner, logger Logger) *Service {
	return &Service{
		hoursRepo:  hoursRepo,
		salonRepo:  salonRepo,
		txBeginner: txBeginner,
		logger:     logger,
	}
}

// GetSchedule получает расписание салона, сгруппированное по дням недели.
// Публичная операция, доступна без аутентификации
func (s *Service) GetSchedule(ctx context.Context, salonID int64) (*ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for salon=%d", salonID)

	if _, err := s.salonRepo.GetByID(ctx, salonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("GetSchedule: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSchedule: failed to get salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetSchedule - failed to get salon: %v", ErrInternal, err)
	}

	windows, err := s.hoursRepo.GetBySalon(ctx, salonID)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return fromDomainWindows(salonID, windows), nil
}

// ReplaceWeekday заменяет расписание одного дня недели.
// Доступно только менеджерам салона. Замена атомарна: удаление старых
// окон и вставка новых выполняются в одной транзакции
func (s *Service) ReplaceWeekday(ctx context.Context, req *ReplaceWeekdayRequest) error {
	s.logger.Info("ReplaceWeekday: salon=%d, weekday=%d, windows=%d by user=%d",
		req.SalonID, req.Weekday, len(req.Windows), req.UserID)

	if req.Weekday < 0 || req.Weekday > 6 {
		return fmt.Errorf("%w: weekday must be in range 0-6", ErrInvalidInput)
	}

	// Проверяем права доступа менеджера
	salon, err := s.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("ReplaceWeekday: salon id=%d not found", req.SalonID)
			return ErrSalonNotFound
		}
		s.logger.Error("ReplaceWeekday: failed to get salon id=%d: %v", req.SalonID, err)
		return fmt.Errorf("%w: ReplaceWeekday - failed to get salon: %v", ErrInternal, err)
	}

	if !salon.IsManager(req.UserID) {
		s.logger.Warn("ReplaceWeekday: user=%d is not a manager of salon=%d", req.UserID, req.SalonID)
		return ErrAccessDenied
	}

	windows, err := parseWindows(req.Windows)
	if err != nil {
		s.logger.Warn("ReplaceWeekday: invalid windows for salon=%d: %v", req.SalonID, err)
		return err
	}

	// Заменяем расписание в транзакции
	tx, err := s.txBeginner.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("ReplaceWeekday: failed to begin transaction: %v", err)
		return fmt.Errorf("%w: ReplaceWeekday - failed to begin transaction: %v", ErrInternal, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)
	if err := s.hoursRepo.ReplaceForWeekday(txCtx, req.SalonID, time.Weekday(req.Weekday), windows); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("ReplaceWeekday: rollback failed: %v", rbErr)
		}
		s.logger.Error("ReplaceWeekday: repository error for salon=%d: %v", req.SalonID, err)
		return fmt.Errorf("%w: ReplaceWeekday - repository error: %v", ErrInternal, err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("ReplaceWeekday: commit failed for salon=%d: %v", req.SalonID, err)
		return fmt.Errorf("%w: ReplaceWeekday - commit failed: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceWeekday: successfully replaced schedule for salon=%d, weekday=%d",
		req.SalonID, req.Weekday)
	return nil
}

// parseWindows валидирует и конвертирует окна запроса в domain модели.
// Требования: корректный формат времени, открытие строго раньше закрытия,
// окна одного дня не пересекаются, не больше MaxWindowsPerWeekday окон
func parseWindows(reqWindows []WindowRequest) ([]*domain.WorkingHoursWindow, error) {
	if len(reqWindows) > domain.MaxWindowsPerWeekday {
		return nil, fmt.Errorf("%w: at most %d windows per weekday", ErrInvalidWindows, domain.MaxWindowsPerWeekday)
	}

	windows := make([]*domain.WorkingHoursWindow, 0, len(reqWindows))
	for _, w := range reqWindows {
		open, err := types.NewTimeStringFromString(w.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid open time %q", ErrInvalidWindows, w.OpenTime)
		}

		close, err := types.NewTimeStringFromString(w.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid close time %q", ErrInvalidWindows, w.CloseTime)
		}

		if !open.IsBefore(close) {
			return nil, fmt.Errorf("%w: open time %s must be before close time %s", ErrInvalidWindows, open, close)
		}

		windows = append(windows, &domain.WorkingHoursWindow{
			OpenTime:  open,
			CloseTime: close,
		})
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].OpenTime.IsBefore(windows[j].OpenTime)
	})

	// После сортировки достаточно проверить соседние окна
	for i := 1; i < len(windows); i++ {
		if windows[i].OpenTime.IsBefore(windows[i-1].CloseTime) {
			return nil, fmt.Errorf("%w: windows %s-%s and %s-%s overlap", ErrInvalidWindows,
				windows[i-1].OpenTime, windows[i-1].CloseTime,
				windows[i].OpenTime, windows[i].CloseTime)
		}
	}

	return windows, nil
}
