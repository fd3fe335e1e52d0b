package domain

import (
	"time"

	"github.com/m04kA/SBM-BookingService/pkg/types"
)

// WorkingHoursWindow represents one contiguous open interval of a salon
// on a given weekday. A weekday may have several windows (split shifts).
type WorkingHoursWindow struct {
	ID        int64
	SalonID   int64
	Weekday   time.Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// Contains returns true if [start, end) lies fully inside the window
func (w *WorkingHoursWindow) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.OpenTime) && !end.IsAfter(w.CloseTime)
}
