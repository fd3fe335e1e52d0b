package domain

import "time"

// Salon represents a tenant of the platform: a business owner with
// clients, treatments, bookings and working-hours configuration
type Salon struct {
	ID          int64
	Name        string
	Description *string
	Phone       *string

	// Стоимость одного бонусного балла в валюте прайса
	LoyaltyRate float64

	ManagerIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsManager returns true if the user manages this salon
func (s *Salon) IsManager(userID int64) bool {
	for _, id := range s.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// EffectiveLoyaltyRate returns the loyalty rate, falling back to the default
func (s *Salon) EffectiveLoyaltyRate() float64 {
	if s.LoyaltyRate > 0 {
		return s.LoyaltyRate
	}
	return DefaultLoyaltyRate
}
