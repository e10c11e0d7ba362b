package models

import (
	"time"

	"github.com/turfly/TurfBookingService/internal/domain"
)

// Request модели

// ListSlotsRequest запрос на получение слотов с фильтрацией
type ListSlotsRequest struct {
	VenueID  *int64     // Фильтр по площадке (опционально)
	Date     *time.Time // Фильтр по дате (опционально)
	IsBooked *bool      // Фильтр по занятости (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSlotsRequest) ToDomainFilter() domain.SlotFilter {
	return domain.SlotFilter{
		VenueID:  r.VenueID,
		Date:     r.Date,
		IsBooked: r.IsBooked,
	}
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID        int64  `json:"id"`
	VenueID   int64  `json:"venueId"`
	Date      string `json:"date"`      // "2024-05-01"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	IsBooked  bool   `json:"isBooked"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:        s.ID,
		VenueID:   s.VenueID,
		Date:      s.SlotDate.Format(domain.DateFormat),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		IsBooked:  s.IsBooked,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		if resp := FromDomainSlot(s); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
