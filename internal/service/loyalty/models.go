package loyalty

import (
	"time"

	"github.com/m04kA/SBM-BookingService/internal/domain"
)

// EntryResponse запись журнала начислений
type EntryResponse struct {
	ID        int64     `json:"id"`
	BookingID *int64    `json:"bookingId,omitempty"`
	Points    int64     `json:"points"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// BalanceResponse баланс клиента в салоне с историей начислений
type BalanceResponse struct {
	ClientID int64           `json:"clientId"`
	SalonID  int64           `json:"salonId"`
	Balance  int64           `json:"balance"`
	Entries  []EntryResponse `json:"entries"`
}

// fromDomainEntries конвертирует записи журнала в DTO
func fromDomainEntries(entries []*domain.LoyaltyEntry) []EntryResponse {
	result := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		result[i] = EntryResponse{
			ID:        entry.ID,
			BookingID: entry.BookingID,
			Points:    entry.Points,
			Reason:    entry.Reason,
			CreatedAt: entry.CreatedAt,
		}
	}
	return result
}
