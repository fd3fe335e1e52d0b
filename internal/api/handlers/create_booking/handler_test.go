package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBM-BookingService/internal/api/middleware"
	"github.com/m04kA/SBM-BookingService/internal/domain"
	createBooking "github.com/m04kA/SBM-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/SBM-BookingService/pkg/types"
)

type stubUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// doRequest прогоняет запрос через Auth middleware, как в боевом роутере
func doRequest(h *Handler, body string, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	uc := &stubUseCase{
		resp: &createBooking.Response{
			ID:               42,
			ClientID:         101,
			SalonID:          1,
			ServiceID:        5,
			BookingDate:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			StartTime:        types.TimeString("10:00"),
			DurationMinutes:  60,
			Status:           string(domain.StatusConfirmed),
			ConfirmationCode: "a1b2c3d4",
		},
	}
	handler := NewHandler(uc, nopLogger{})

	body := `{"salonId": 1, "serviceId": 5, "date": "2026-03-10", "startTime": "10:00"}`
	rec := doRequest(handler, body, "101")

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-03-10", resp.BookingDate)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "confirmed", resp.Status)

	// ClientID берется из заголовка аутентификации, не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(101), uc.gotReq.ClientID)
}

func TestHandler_Handle_MissingUserID(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	body := `{"salonId": 1, "serviceId": 5, "date": "2026-03-10", "startTime": "10:00"}`
	rec := doRequest(handler, body, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	rec := doRequest(handler, `{"salonId": "not-a-number"}`, "101")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_UnknownFieldRejected(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	body := `{"salonId": 1, "serviceId": 5, "date": "2026-03-10", "startTime": "10:00", "clientId": 999}`
	rec := doRequest(handler, body, "101")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_InvalidTimeFormat(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	body := `{"salonId": 1, "serviceId": 5, "date": "2026-03-10", "startTime": "10-00"}`
	rec := doRequest(handler, body, "101")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_SlotTaken(t *testing.T) {
	handler := NewHandler(&stubUseCase{err: createBooking.ErrSlotTaken}, nopLogger{})

	body := `{"salonId": 1, "serviceId": 5, "date": "2026-03-10", "startTime": "10:00"}`
	rec := doRequest(handler, body, "101")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Handle_StartInPast(t *testing.T) {
	handler := NewHandler(&stubUseCase{err: createBooking.ErrInvalidDate}, nopLogger{})

	body := `{"salonId": 1, "serviceId": 5, "date": "2020-01-01", "startTime": "10:00"}`
	rec := doRequest(handler, body, "101")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
