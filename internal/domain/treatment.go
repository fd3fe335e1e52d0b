package domain

import "time"

// Treatment represents a bookable salon service with fixed duration and price
type Treatment struct {
	ID              int64
	SalonID         int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	IsVisible       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if clients are allowed to book this treatment
func (t *Treatment) IsBookable() bool {
	return t.IsVisible && t.DurationMinutes > 0
}
