package catalog

import (
	"context"
	"errors"
	"fmt"

	salonRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/salon"
)

// Service сервис каталога услуг салона
type Service struct {
	catalogRepo CatalogRepository
	salonRepo   SalonRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, salonRepo SalonRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		salonRepo:   salonRepo,
		logger:      logger,
	}
}

// GetSalonServices получает список видимых услуг салона.
// Публичная операция, скрытые услуги в выдачу не попадают
func (s *Service) GetSalonServices(ctx context.Context, salonID int64) (*TreatmentListResponse, error) {
	s.logger.Info("GetSalonServices: fetching services for salon=%d", salonID)

	if _, err := s.salonRepo.GetByID(ctx, salonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("GetSalonServices: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSalonServices: failed to get salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetSalonServices - failed to get salon: %v", ErrInternal, err)
	}

	treatments, err := s.catalogRepo.GetBySalon(ctx, salonID, true)
	if err != nil {
		s.logger.Error("GetSalonServices: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetSalonServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSalonServices: salon=%d has %d visible services", salonID, len(treatments))
	return fromDomainTreatments(salonID, treatments), nil
}
