package history

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SBM-BookingService/pkg/ptr"
)

// Service сервис истории процедур клиента
type Service struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса истории процедур
func NewService(bookingRepo BookingRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetTreatmentHistory собирает историю завершенных визитов клиента с агрегатами.
// Работает в два этапа: сначала выбираются завершенные бронирования,
// затем визиты обогащаются актуальными описаниями услуг из каталога.
// Имя и цена услуги берутся из денормализованных полей бронирования -
// история показывает цену на момент визита, а не текущую.
// Клиент видит только свою историю
func (s *Service) GetTreatmentHistory(ctx context.Context, clientID, userID int64) (*HistoryResponse, error) {
	s.logger.Info("GetTreatmentHistory: fetching history for client=%d", clientID)

	if clientID != userID {
		s.logger.Warn("GetTreatmentHistory: user=%d requested history of client=%d", userID, clientID)
		return nil, ErrAccessDenied
	}

	// Этап 1: завершенные визиты клиента, отсортированы репозиторием от новых к старым
	bookings, err := s.bookingRepo.GetByClientID(ctx, clientID, ptr.Ptr(domain.StatusCompleted))
	if err != nil {
		s.logger.Error("GetTreatmentHistory: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetTreatmentHistory - repository error: %v", ErrInternal, err)
	}

	// Этап 2: обогащаем визиты описаниями из каталога.
	// Удаленная из каталога услуга историю не ломает - описание просто пустое
	descriptions := s.fetchDescriptions(ctx, bookings)

	resp := &HistoryResponse{
		ClientID: clientID,
		Visits:   make([]VisitResponse, 0, len(bookings)),
	}

	statsByService := make(map[int64]*ServiceStatsResponse)

	for _, booking := range bookings {
		resp.TotalVisits++
		resp.TotalSpent += booking.ServicePrice

		visit := VisitResponse{
			BookingID:   booking.ID,
			SalonID:     booking.SalonID,
			ServiceID:   booking.ServiceID,
			ServiceName: booking.ServiceName,
			Price:       booking.ServicePrice,
			VisitDate:   booking.BookingDate.Format(domain.DateFormat),
			StartTime:   booking.StartTime.String(),
			Description: descriptions[booking.ServiceID],
		}
		resp.Visits = append(resp.Visits, visit)

		stats, ok := statsByService[booking.ServiceID]
		if !ok {
			stats = &ServiceStatsResponse{
				ServiceID:   booking.ServiceID,
				ServiceName: booking.ServiceName,
			}
			statsByService[booking.ServiceID] = stats
		}
		stats.Visits++
		stats.TotalSpent += booking.ServicePrice
	}

	// Визиты отсортированы от новых к старым - первый и есть последний визит
	if len(bookings) > 0 {
		last := bookings[0].BookingDate.Format(domain.DateFormat)
		resp.LastVisit = &last
	}

	resp.ByService = make([]ServiceStatsResponse, 0, len(statsByService))
	for _, stats := range statsByService {
		resp.ByService = append(resp.ByService, *stats)
	}
	sort.Slice(resp.ByService, func(i, j int) bool {
		if resp.ByService[i].Visits != resp.ByService[j].Visits {
			return resp.ByService[i].Visits > resp.ByService[j].Visits
		}
		return resp.ByService[i].ServiceID < resp.ByService[j].ServiceID
	})

	s.logger.Info("GetTreatmentHistory: client=%d has %d visits, total spent %.2f",
		clientID, resp.TotalVisits, resp.TotalSpent)
	return resp, nil
}

// fetchDescriptions получает актуальные описания услуг для уникальных serviceID
func (s *Service) fetchDescriptions(ctx context.Context, bookings []*domain.Booking) map[int64]*string {
	descriptions := make(map[int64]*string)

	for _, booking := range bookings {
		if _, seen := descriptions[booking.ServiceID]; seen {
			continue
		}

		treatment, err := s.catalogRepo.GetByID(ctx, booking.ServiceID)
		if err != nil {
			if !errors.Is(err, catalogRepo.ErrTreatmentNotFound) {
				s.logger.Warn("GetTreatmentHistory: failed to enrich service id=%d: %v", booking.ServiceID, err)
			}
			descriptions[booking.ServiceID] = nil
			continue
		}

		descriptions[booking.ServiceID] = treatment.Description
	}

	return descriptions
}
