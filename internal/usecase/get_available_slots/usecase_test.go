package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/catalog"
	salonRepo "github.com/m04kA/SBM-BookingService/internal/infra/storage/salon"
	"github.com/m04kA/SBM-BookingService/pkg/types"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (s *stubBookingRepo) GetBySalonWithFilter(_ context.Context, _ domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, s.err
}

type stubHoursRepo struct {
	windows []*domain.WorkingHoursWindow
	err     error
}

func (s *stubHoursRepo) GetBySalonAndWeekday(_ context.Context, _ int64, _ time.Weekday) ([]*domain.WorkingHoursWindow, error) {
	return s.windows, s.err
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

func newTestUseCase(
	bookings *stubBookingRepo,
	hours *stubHoursRepo,
	catalog *stubCatalogRepo,
	salons *stubSalonRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookings, hours, catalog, salons, nopLogger{})
	uc.timeProvider = &stubTimeProvider{now: now}
	return uc
}

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

func defaultSalon() *domain.Salon {
	return &domain.Salon{ID: 1, Name: "Студия красоты"}
}

func fullDayWindows() []*domain.WorkingHoursWindow {
	return []*domain.WorkingHoursWindow{
		{SalonID: 1, OpenTime: types.TimeString("09:00"), CloseTime: types.TimeString("18:00")},
	}
}

func TestUseCase_Execute_MarksBookedSlotsUnavailable(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{bookings: []*domain.Booking{
			{StartTime: types.TimeString("10:00"), DurationMinutes: 60, Status: domain.StatusConfirmed},
		}},
		&stubHoursRepo{windows: fullDayWindows()},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: defaultSalon()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 7, Date: date})
	require.NoError(t, err)

	// Вся сетка выдается целиком, занятые слоты помечены недоступными
	require.Len(t, resp.Slots, 25)

	byStart := make(map[types.TimeString]Slot, len(resp.Slots))
	for _, slot := range resp.Slots {
		byStart[slot.StartTime] = slot
	}

	// Услуга 60 минут: конфликт задевает и слот, начинающийся за полчаса до записи
	assert.True(t, byStart[types.TimeString("09:00")].Available)
	assert.False(t, byStart[types.TimeString("09:30")].Available)
	assert.False(t, byStart[types.TimeString("10:00")].Available)
	assert.False(t, byStart[types.TimeString("10:30")].Available)
	assert.True(t, byStart[types.TimeString("11:00")].Available)

	// Вне рабочих часов - недоступно, но присутствует в сетке
	assert.False(t, byStart[types.TimeString("08:00")].Available)
	assert.False(t, byStart[types.TimeString("20:00")].Available)
}

func TestUseCase_Execute_CancelledBookingFreesSlot(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{bookings: []*domain.Booking{
			{StartTime: types.TimeString("10:00"), DurationMinutes: 60, Status: domain.StatusCancelledByClient},
		}},
		&stubHoursRepo{windows: fullDayWindows()},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: defaultSalon()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 7, Date: date})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		if slot.StartTime == types.TimeString("10:00") {
			assert.True(t, slot.Available)
		}
	}
}

func TestUseCase_Execute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubHoursRepo{},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: defaultSalon()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 7, Date: date})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_SalonNotFound(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubHoursRepo{},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{err: salonRepo.ErrSalonNotFound},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 99, ServiceID: 7, Date: date})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubHoursRepo{},
		&stubCatalogRepo{err: catalogRepo.ErrTreatmentNotFound},
		&stubSalonRepo{salon: defaultSalon()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 99, Date: date})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_HiddenServiceRejected(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	hidden := defaultTreatment()
	hidden.IsVisible = false

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubHoursRepo{},
		&stubCatalogRepo{treatment: hidden},
		&stubSalonRepo{salon: defaultSalon()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 7, Date: date})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_ForeignServiceRejected(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	foreign := defaultTreatment()
	foreign.SalonID = 2

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubHoursRepo{},
		&stubCatalogRepo{treatment: foreign},
		&stubSalonRepo{salon: defaultSalon()},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 7, Date: date})
	assert.ErrorIs(t, err, ErrServiceNotInSalon)
}

func TestUseCase_Execute_DayOffReturnsFullUnavailableGrid(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubHoursRepo{windows: nil},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: defaultSalon()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 7, Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 25)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Available)
	}
}

func TestUseCase_Execute_RecomputationIsIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 15, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{bookings: []*domain.Booking{
			{StartTime: types.TimeString("14:00"), DurationMinutes: 60, Status: domain.StatusConfirmed},
		}},
		&stubHoursRepo{windows: fullDayWindows()},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: defaultSalon()},
		now,
	)

	req := &Request{SalonID: 1, ServiceID: 7, Date: date}

	// При замороженных часах и неизменных данных повторный расчет
	// дает в точности ту же сетку
	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUseCase_Execute_HoursFetchFailure(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubHoursRepo{err: errors.New("connection refused")},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: defaultSalon()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 7, Date: date})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestUseCase_Execute_BookingsFetchFailure(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{err: errors.New("connection refused")},
		&stubHoursRepo{windows: fullDayWindows()},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: defaultSalon()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 7, Date: date})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}

func TestUseCase_Execute_SplitShiftWithHourService(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubHoursRepo{windows: []*domain.WorkingHoursWindow{
			{SalonID: 1, OpenTime: types.TimeString("09:00"), CloseTime: types.TimeString("13:00")},
			{SalonID: 1, OpenTime: types.TimeString("14:00"), CloseTime: types.TimeString("18:00")},
		}},
		&stubCatalogRepo{treatment: defaultTreatment()},
		&stubSalonRepo{salon: defaultSalon()},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, ServiceID: 7, Date: date})
	require.NoError(t, err)

	byStart := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		byStart[slot.StartTime] = slot.Available
	}

	// Услуга 60 минут должна целиком помещаться в одну смену
	assert.True(t, byStart[types.TimeString("12:00")])  // 12:00-13:00 впритык к концу смены
	assert.False(t, byStart[types.TimeString("12:30")]) // вылезает в перерыв
	assert.False(t, byStart[types.TimeString("13:00")]) // начало в перерыве
	assert.False(t, byStart[types.TimeString("13:30")]) // начало в перерыве
	assert.True(t, byStart[types.TimeString("14:00")])
	assert.True(t, byStart[types.TimeString("17:00")]) // впритык к концу дня
	assert.False(t, byStart[types.TimeString("17:30")])
}
