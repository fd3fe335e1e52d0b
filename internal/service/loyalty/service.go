package loyalty

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	salonRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/salon"
)

// Причины начислений в журнале
const (
	reasonCompletedVisit = "completed_visit"
)

// Service сервис бонусной программы
type Service struct {
	loyaltyRepo LoyaltyRepository
	salonRepo   SalonRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бонусной программы
func NewService(loyaltyRepo LoyaltyRepository, salonRepo SalonRepository, logger Logger) *Service {
	return &Service{
		loyaltyRepo: loyaltyRepo,
		salonRepo:   salonRepo,
		logger:      logger,
	}
}

// AccrueForBooking начисляет баллы за завершенный визит.
// Количество баллов: floor(цена услуги / курс балла салона).
// Курс берется из настроек салона, при нулевом - дефолтный
func (s *Service) AccrueForBooking(ctx context.Context, booking *domain.Booking) error {
	if booking.Status != domain.StatusCompleted {
		return fmt.Errorf("%w: booking id=%d is not completed", ErrInvalidInput, booking.ID)
	}

	salon, err := s.salonRepo.GetByID(ctx, booking.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("AccrueForBooking: salon id=%d not found", booking.SalonID)
			return ErrSalonNotFound
		}
		s.logger.Error("AccrueForBooking: failed to get salon id=%d: %v", booking.SalonID, err)
		return fmt.Errorf("%w: AccrueForBooking - failed to get salon: %v", ErrInternal, err)
	}

	points := int64(math.Floor(booking.ServicePrice / salon.EffectiveLoyaltyRate()))
	if points <= 0 {
		s.logger.Info("AccrueForBooking: booking id=%d price=%.2f yields no points", booking.ID, booking.ServicePrice)
		return nil
	}

	entry := &domain.LoyaltyEntry{
		ClientID:  booking.ClientID,
		SalonID:   booking.SalonID,
		BookingID: &booking.ID,
		Points:    points,
		Reason:    reasonCompletedVisit,
	}

	if _, err := s.loyaltyRepo.Insert(ctx, entry); err != nil {
		s.logger.Error("AccrueForBooking: failed to insert entry for booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: AccrueForBooking - failed to insert entry: %v", ErrInternal, err)
	}

	s.logger.Info("AccrueForBooking: accrued %d points for client=%d, salon=%d, booking=%d",
		points, booking.ClientID, booking.SalonID, booking.ID)
	return nil
}

// GetBalance получает баланс клиента в салоне с историей начислений.
// Клиент видит только свой баланс
func (s *Service) GetBalance(ctx context.Context, clientID, salonID, userID int64) (*BalanceResponse, error) {
	s.logger.Info("GetBalance: fetching balance for client=%d, salon=%d", clientID, salonID)

	if clientID != userID {
		s.logger.Warn("GetBalance: user=%d requested balance of client=%d", userID, clientID)
		return nil, ErrAccessDenied
	}

	if _, err := s.salonRepo.GetByID(ctx, salonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("GetBalance: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetBalance: failed to get salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetBalance - failed to get salon: %v", ErrInternal, err)
	}

	balance, err := s.loyaltyRepo.GetBalance(ctx, clientID, salonID)
	if err != nil {
		s.logger.Error("GetBalance: failed to get balance for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetBalance - failed to get balance: %v", ErrInternal, err)
	}

	entries, err := s.loyaltyRepo.GetEntries(ctx, clientID, salonID)
	if err != nil {
		s.logger.Error("GetBalance: failed to get entries for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetBalance - failed to get entries: %v", ErrInternal, err)
	}

	s.logger.Info("GetBalance: client=%d has %d points in salon=%d", clientID, balance, salonID)
	return &BalanceResponse{
		ClientID: clientID,
		SalonID:  salonID,
		Balance:  balance,
		Entries:  fromDomainEntries(entries),
	}, nil
}
