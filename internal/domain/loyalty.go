package domain

import "time"

// LoyaltyEntry represents one row of the loyalty points ledger
// Баланс клиента - сумма Points по всем записям
type LoyaltyEntry struct {
	ID        int64
	ClientID  int64
	SalonID   int64
	BookingID *int64
	Points    int64
	Reason    string
	CreatedAt time.Time
}
