package domain

import (
	"time"

	"github.com/turfly/TurfBookingService/pkg/types"
)

// Slot represents a discrete, fixed-duration bookable time window for one
// venue on one date. Slots are created in bulk by the slot generator and
// consumed/released by booking admission and cancellation.
type Slot struct {
	ID        int64
	VenueID   int64
	SlotDate  time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	IsBooked  bool
}

// Window returns the natural key of the slot within its venue/date
func (s *Slot) Window() (types.TimeString, types.TimeString) {
	return s.StartTime, s.EndTime
}

// SlotFilter фильтр для выборки слотов
type SlotFilter struct {
	VenueID  *int64           // Фильтр по площадке (опционально)
	Date     *time.Time       // Фильтр по дате (опционально)
	IsBooked *bool            // Фильтр по занятости (опционально)
}
