package domain

import "github.com/m04kA/SBM-BookingService/pkg/types"

// Slot represents a candidate appointment start time for one day
// Слоты генерируются заново при каждом запросе и нигде не сохраняются
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}

// End returns the end of the candidate interval [start, start+duration)
func (s *Slot) End() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
