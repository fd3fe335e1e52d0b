package create_booking

import (
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
	createBooking "github.com/m04kA/SBM-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/SBM-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SalonID   int64   `json:"salonId"`
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`      // "2026-03-10"
	StartTime string  `json:"startTime"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// ClientID берется из контекста аутентификации, не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:  clientID,
		SalonID:   r.SalonID,
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: startTime,
		Notes:     r.Notes,
	}, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID               int64   `json:"id"`
	ClientID         int64   `json:"clientId"`
	SalonID          int64   `json:"salonId"`
	ServiceID        int64   `json:"serviceId"`
	BookingDate      string  `json:"bookingDate"`
	StartTime        string  `json:"startTime"`
	DurationMinutes  int     `json:"durationMinutes"`
	Status           string  `json:"status"`
	ConfirmationCode string  `json:"confirmationCode"`
	Confirmation     string  `json:"confirmation"`
	ServiceName      string  `json:"serviceName"`
	ServicePrice     float64 `json:"servicePrice"`
	ClientName       *string `json:"clientName,omitempty"`
	ClientPhone      *string `json:"clientPhone,omitempty"`
	Notes            *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:               resp.ID,
		ClientID:         resp.ClientID,
		SalonID:          resp.SalonID,
		ServiceID:        resp.ServiceID,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		Status:           resp.Status,
		ConfirmationCode: resp.ConfirmationCode,
		Confirmation:     resp.Confirmation,
		ServiceName:      resp.ServiceName,
		ServicePrice:     resp.ServicePrice,
		ClientName:       resp.ClientName,
		ClientPhone:      resp.ClientPhone,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt,
		UpdatedAt:        resp.UpdatedAt,
	}
}
