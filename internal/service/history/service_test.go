package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SBM-BookingService/pkg/types"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
}

func (s *stubBookingRepo) GetByClientID(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return s.bookings, nil
}

type stubCatalogRepo struct {
	treatments map[int64]*domain.Treatment
	calls      int
}

func (s *stubCatalogRepo) GetByID(_ context.Context, id int64) (*domain.Treatment, error) {
	s.calls++
	treatment, ok := s.treatments[id]
	if !ok {
		return nil, catalogRepo.ErrTreatmentNotFound
	}
	return treatment, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func completedVisit(id int64, serviceID int64, name string, price float64, date string) *domain.Booking {
	d, _ := time.Parse(domain.DateFormat, date)
	return &domain.Booking{
		ID:              id,
		ClientID:        101,
		SalonID:         1,
		ServiceID:       serviceID,
		BookingDate:     d,
		StartTime:       types.TimeString("12:00"),
		DurationMinutes: 60,
		Status:          domain.StatusCompleted,
		ServiceName:     name,
		ServicePrice:    price,
	}
}

func TestService_GetTreatmentHistory_Aggregates(t *testing.T) {
	desc := "Классический маникюр с покрытием"
	bookings := []*domain.Booking{
		completedVisit(3, 7, "Маникюр классический", 1500, "2026-03-10"),
		completedVisit(2, 8, "Стрижка женская", 2000, "2026-02-20"),
		completedVisit(1, 7, "Маникюр классический", 1400, "2026-01-15"),
	}

	catalog := &stubCatalogRepo{treatments: map[int64]*domain.Treatment{
		7: {ID: 7, Description: &desc},
	}}

	svc := NewService(&stubBookingRepo{bookings: bookings}, catalog, nopLogger{})

	resp, err := svc.GetTreatmentHistory(context.Background(), 101, 101)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalVisits)
	assert.Equal(t, 4900.0, resp.TotalSpent)
	require.NotNil(t, resp.LastVisit)
	assert.Equal(t, "2026-03-10", *resp.LastVisit)

	require.Len(t, resp.Visits, 3)
	// Цена на момент визита, а не текущая
	assert.Equal(t, 1400.0, resp.Visits[2].Price)
	// Описание обогащено из каталога
	require.NotNil(t, resp.Visits[0].Description)
	assert.Equal(t, desc, *resp.Visits[0].Description)
	// Удаленная из каталога услуга - без описания
	assert.Nil(t, resp.Visits[1].Description)

	// Агрегаты по услугам: маникюр дважды, стрижка один раз
	require.Len(t, resp.ByService, 2)
	assert.Equal(t, int64(7), resp.ByService[0].ServiceID)
	assert.Equal(t, 2, resp.ByService[0].Visits)
	assert.Equal(t, 2900.0, resp.ByService[0].TotalSpent)
	assert.Equal(t, int64(8), resp.ByService[1].ServiceID)
	assert.Equal(t, 1, resp.ByService[1].Visits)
}

func TestService_GetTreatmentHistory_CatalogFetchedOncePerService(t *testing.T) {
	bookings := []*domain.Booking{
		completedVisit(1, 7, "Маникюр классический", 1500, "2026-03-10"),
		completedVisit(2, 7, "Маникюр классический", 1500, "2026-03-11"),
		completedVisit(3, 7, "Маникюр классический", 1500, "2026-03-12"),
	}

	catalog := &stubCatalogRepo{treatments: map[int64]*domain.Treatment{7: {ID: 7}}}
	svc := NewService(&stubBookingRepo{bookings: bookings}, catalog, nopLogger{})

	_, err := svc.GetTreatmentHistory(context.Background(), 101, 101)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.calls)
}

func TestService_GetTreatmentHistory_EmptyHistory(t *testing.T) {
	svc := NewService(&stubBookingRepo{}, &stubCatalogRepo{}, nopLogger{})

	resp, err := svc.GetTreatmentHistory(context.Background(), 101, 101)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalVisits)
	assert.Nil(t, resp.LastVisit)
	assert.Empty(t, resp.Visits)
}

func TestService_GetTreatmentHistory_ForeignHistoryDenied(t *testing.T) {
	svc := NewService(&stubBookingRepo{}, &stubCatalogRepo{}, nopLogger{})

	_, err := svc.GetTreatmentHistory(context.Background(), 101, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
