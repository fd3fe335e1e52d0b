package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SBM-BookingService/internal/service/bookings/models"
	"github.com/m04kA/SBM-BookingService/pkg/types"
)

type stubBookingRepo struct {
	booking       *domain.Booking
	bookings      []*domain.Booking
	getErr        error
	cancelStatus  domain.BookingStatus
	cancelReason  string
	updatedStatus domain.BookingStatus
}

func (s *stubBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return s.booking, s.getErr
}

func (s *stubBookingRepo) GetByClientID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return s.bookings, nil
}

func (s *stubBookingRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, nil
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	s.updatedStatus = status
	return nil
}

func (s *stubBookingRepo) Cancel(_ context.Context, _ int64, status domain.BookingStatus, reason string) error {
	s.cancelStatus = status
	s.cancelReason = reason
	return nil
}

type stubSalonRepo struct {
	salon *domain.Salon
	err   error
}

func (s *stubSalonRepo) GetByID(_ context.Context, _ int64) (*domain.Salon, error) {
	return s.salon, s.err
}

type stubLoyalty struct {
	accrued []*domain.Booking
	err     error
}

func (s *stubLoyalty) AccrueForBooking(_ context.Context, booking *domain.Booking) error {
	s.accrued = append(s.accrued, booking)
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              42,
		ClientID:        101,
		SalonID:         1,
		ServiceID:       7,
		BookingDate:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("14:00"),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
		ServiceName:     "Маникюр классический",
		ServicePrice:    1500,
	}
}

func salonWithManager(managerID int64) *domain.Salon {
	return &domain.Salon{ID: 1, ManagerIDs: []int64{managerID}}
}

func TestService_GetByID_OwnerAllowed(t *testing.T) {
	svc := NewService(
		&stubBookingRepo{booking: confirmedBooking()},
		&stubSalonRepo{salon: salonWithManager(555)},
		&stubLoyalty{},
		nopLogger{},
	)

	resp, err := svc.GetByID(context.Background(), 42, 101)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestService_GetByID_ManagerAllowed(t *testing.T) {
	svc := NewService(
		&stubBookingRepo{booking: confirmedBooking()},
		&stubSalonRepo{salon: salonWithManager(555)},
		&stubLoyalty{},
		nopLogger{},
	)

	_, err := svc.GetByID(context.Background(), 42, 555)
	assert.NoError(t, err)
}

func TestService_GetByID_StrangerDenied(t *testing.T) {
	svc := NewService(
		&stubBookingRepo{booking: confirmedBooking()},
		&stubSalonRepo{salon: salonWithManager(555)},
		&stubLoyalty{},
		nopLogger{},
	)

	_, err := svc.GetByID(context.Background(), 42, 777)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(
		&stubBookingRepo{getErr: bookingRepo.ErrBookingNotFound},
		&stubSalonRepo{},
		&stubLoyalty{},
		nopLogger{},
	)

	_, err := svc.GetByID(context.Background(), 42, 101)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel_ByClient(t *testing.T) {
	repo := &stubBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &stubSalonRepo{salon: salonWithManager(555)}, &stubLoyalty{}, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		UserID:             101,
		CancellationReason: "не смогу прийти",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByClient, repo.cancelStatus)
	assert.Equal(t, "не смогу прийти", repo.cancelReason)
}

func TestService_Cancel_ByManager(t *testing.T) {
	repo := &stubBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &stubSalonRepo{salon: salonWithManager(555)}, &stubLoyalty{}, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		UserID:             555,
		CancellationReason: "мастер заболел",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledBySalon, repo.cancelStatus)
}

func TestService_Cancel_StrangerDenied(t *testing.T) {
	repo := &stubBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &stubSalonRepo{salon: salonWithManager(555)}, &stubLoyalty{}, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 777})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Cancel_CompletedNotCancellable(t *testing.T) {
	done := confirmedBooking()
	done.Status = domain.StatusCompleted

	svc := NewService(
		&stubBookingRepo{booking: done},
		&stubSalonRepo{salon: salonWithManager(555)},
		&stubLoyalty{},
		nopLogger{},
	)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 101})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_UpdateStatus_ManagerOnly(t *testing.T) {
	repo := &stubBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &stubSalonRepo{salon: salonWithManager(555)}, &stubLoyalty{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: 101, // клиент, не менеджер
		Status: string(domain.StatusInProgress),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_UpdateStatus_CompletedAccruesLoyalty(t *testing.T) {
	repo := &stubBookingRepo{booking: confirmedBooking()}
	loyalty := &stubLoyalty{}
	svc := NewService(repo, &stubSalonRepo{salon: salonWithManager(555)}, loyalty, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: 555,
		Status: string(domain.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
	require.Len(t, loyalty.accrued, 1)
	assert.Equal(t, int64(42), loyalty.accrued[0].ID)
}

func TestService_UpdateStatus_NonCompletedDoesNotAccrue(t *testing.T) {
	repo := &stubBookingRepo{booking: confirmedBooking()}
	loyalty := &stubLoyalty{}
	svc := NewService(repo, &stubSalonRepo{salon: salonWithManager(555)}, loyalty, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: 555,
		Status: string(domain.StatusInProgress),
	})
	require.NoError(t, err)
	assert.Empty(t, loyalty.accrued)
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	repo := &stubBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &stubSalonRepo{salon: salonWithManager(555)}, &stubLoyalty{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: 555,
		Status: "broken",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetClientBookings_OwnHistoryOnly(t *testing.T) {
	svc := NewService(
		&stubBookingRepo{bookings: []*domain.Booking{confirmedBooking()}},
		&stubSalonRepo{},
		&stubLoyalty{},
		nopLogger{},
	)

	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: 101,
		UserID:   999,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: 101,
		UserID:   101,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestService_GetSalonBookings_ManagerOnly(t *testing.T) {
	svc := NewService(
		&stubBookingRepo{bookings: []*domain.Booking{confirmedBooking()}},
		&stubSalonRepo{salon: salonWithManager(555)},
		&stubLoyalty{},
		nopLogger{},
	)

	_, err := svc.GetSalonBookings(context.Background(), &models.GetSalonBookingsRequest{
		SalonID: 1,
		UserID:  101,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetSalonBookings(context.Background(), &models.GetSalonBookingsRequest{
		SalonID: 1,
		UserID:  555,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}
