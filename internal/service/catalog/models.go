package catalog

import (
	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// TreatmentResponse одна услуга в каталоге салона
type TreatmentResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// TreatmentListResponse список услуг салона
type TreatmentListResponse struct {
	SalonID  int64               `json:"salonId"`
	Services []TreatmentResponse `json:"services"`
}

func fromDomainTreatments(salonID int64, treatments []*domain.Treatment) *TreatmentListResponse {
	resp := &TreatmentListResponse{
		SalonID:  salonID,
		Services: make([]TreatmentResponse, 0, len(treatments)),
	}

	for _, t := range treatments {
		resp.Services = append(resp.Services, TreatmentResponse{
			ID:              t.ID,
			Name:            t.Name,
			Description:     t.Description,
			DurationMinutes: t.DurationMinutes,
			Price:           t.Price,
		})
	}

	return resp
}
