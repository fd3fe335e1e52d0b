package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	"github.com/m04kA/SBM-BookingService/pkg/types"
)

func newTestBooking() *domain.Booking {
	return &domain.Booking{
		ClientID:         101,
		SalonID:          1,
		ServiceID:        7,
		BookingDate:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:        types.TimeString("14:00"),
		DurationMinutes:  30,
		Status:           domain.StatusConfirmed,
		ConfirmationCode: "b2f9c6de-1111-2222-3333-444455556666",
		ServiceName:      "Маникюр классический",
		ServicePrice:     1500,
	}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), now, now))

	created, err := repo.Create(context.Background(), newTestBooking())
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Гонка двух одновременных записей в один слот: вторая вставка нарушает
// exclusion constraint и должна превращаться в ErrSlotTaken, а не в общую
// ошибку выполнения запроса
func TestRepository_Create_SlotTakenOnExclusionViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"})

	_, err = repo.Create(context.Background(), newTestBooking())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolationAlsoMapsToSlotTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.Create(context.Background(), newTestBooking())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT .+ FROM bookings").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err = repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStatus(context.Background(), 999, domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
