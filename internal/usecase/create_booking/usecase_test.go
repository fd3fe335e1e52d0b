package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/catalog"
	salonRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/salon"
	"github.com/m04kA/SBM-BookingService/internal/integrations/profileservice"
	"github.com/m04kA/SBM-BookingService/pkg/types"
)

type stubBookingRepo struct {
	created *domain.Booking
	err     error
}

func (s *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	booking.ID = 42
	booking.CreatedAt = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	s.created = booking
	return booking, nil
}

type stubCatalogRepo struct {
	treatment *domain.Treatment
	err       error
}

func (s *stubCatalogRepo) GetByID(_ context.Context, _ int64) (*domain.Treatment, error) {
	return s.treatment, s.err
}

type stubSalonRepo struct {
	salon *domain.Salon
	err   error
}

func (s *stubSalonRepo) GetByID(_ context.Context, _ int64) (*domain.Salon, error) {
	return s.salon, s.err
}

type stubProfileClient struct {
	profile *profileservice.Profile
	err     error
}

func (s *stubProfileClient) GetProfileWithGracefulDegradation(_ context.Context, _ int64) (*profileservice.Profile, error) {
	return s.profile, s.err
}

type stubCodeGen struct {
	code string
}

func (s *stubCodeGen) NewCode() string {
	return s.code
}

type stubTimeProvider struct {
	now time.Time
}

func (s *stubTimeProvider) Now() time.Time {
	return s.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultTreatment() *domain.Treatment {
	return &domain.Treatment{
		ID:              7,
		SalonID:         1,
		Name:            "Маникюр классический",
		DurationMinutes: 60,
		Price:           1500,
		IsVisible:       true,
	}
}

func defaultProfile() *profileservice.Profile {
	return &profileservice.Profile{
		ID:        101,
		FirstName: "Анна",
		LastName:  "Иванова",
		Phone:     "+79990001122",
	}
}

func newTestUseCase(
	bookings *stubBookingRepo,
	catalog *stubCatalogRepo,
	salons *stubSalonRepo,
	profiles *stubProfileClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookings, catalog, salons, profiles, nopLogger{})
	uc.timeProvider = &stubTimeProvider{now: now}
	uc.codeGen = &stubCodeGen{code: "b2f9c6de-1111-2222-3333-444455556666"}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientID:  101,
		SalonID:   1,
		ServiceID: 7,
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("14:00"),
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	bookings := &stubBookingRepo{}

	uc := newTestUseCase(
		bookings,
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: &domain.Salon{ID: 1}},
		&stubProfileClient{profile: defaultProfile()},
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "b2f9c6de-1111-2222-3333-444455556666", resp.ConfirmationCode)
	assert.Contains(t, resp.Confirmation, "Маникюр классический")
	assert.Contains(t, resp.Confirmation, "2026-03-10")
	assert.Contains(t, resp.Confirmation, "14:00")

	// Денормализация: имя/цена услуги и контакты клиента фиксируются на момент записи
	require.NotNil(t, bookings.created)
	assert.Equal(t, "Маникюр классический", bookings.created.ServiceName)
	assert.Equal(t, 1500.0, bookings.created.ServicePrice)
	require.NotNil(t, bookings.created.ClientName)
	assert.Equal(t, "Анна Иванова", *bookings.created.ClientName)
	require.NotNil(t, bookings.created.ClientPhone)
	assert.Equal(t, "+79990001122", *bookings.created.ClientPhone)
	assert.Equal(t, 60, bookings.created.DurationMinutes)
}

// Гонка двух клиентов за один слот: проигравшая вставка нарушает constraint
// и превращается в ErrSlotTaken без повторной проверки доступности
func TestUseCase_Execute_ConcurrentSlotTaken(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{err: bookingRepo.ErrSlotTaken},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: &domain.Salon{ID: 1}},
		&stubProfileClient{profile: defaultProfile()},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUseCase_Execute_ProfileDegradationDoesNotBlockBooking(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	bookings := &stubBookingRepo{}

	uc := newTestUseCase(
		bookings,
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: &domain.Salon{ID: 1}},
		&stubProfileClient{err: profileservice.ErrServiceDegraded},
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Nil(t, bookings.created.ClientName)
	assert.Nil(t, bookings.created.ClientPhone)
}

func TestUseCase_Execute_SalonNotFound(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{err: salonRepo.ErrSalonNotFound},
		&stubProfileClient{profile: defaultProfile()},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubCatalogRepo{err: catalogRepo.ErrTreatmentNotFound},
		&stubSalonRepo{salon: &domain.Salon{ID: 1}},
		&stubProfileClient{profile: defaultProfile()},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_PastStartRejected(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	req := validRequest()
	req.StartTime = types.TimeString("14:00") // сегодня, но уже прошло

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: &domain.Salon{ID: 1}},
		&stubProfileClient{profile: defaultProfile()},
		now,
	)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_InvalidStartTimeFormat(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	req := validRequest()
	req.StartTime = types.TimeString("25:99")

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: &domain.Salon{ID: 1}},
		&stubProfileClient{profile: defaultProfile()},
		now,
	)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
