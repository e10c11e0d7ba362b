package create_slots

import (
	"time"

	"github.com/turfly/TurfBookingService/internal/domain"
	generateSlots "github.com/turfly/TurfBookingService/internal/usecase/generate_slots"
)

// ErrorResponse тело ошибки генерации слотов
// Эндпоинт исторически отдаёт поле "error", а не "message"
type ErrorResponse struct {
	Error string `json:"error"`
}

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	VenueID     int64  `json:"venueId"`
	WindowStart string `json:"windowStart"` // RFC3339, например "2025-10-15T09:00:00+05:30"
	WindowEnd   string `json:"windowEnd"`   // RFC3339
}

// SlotResponse HTTP модель сгенерированного слота
type SlotResponse struct {
	VenueID   int64  `json:"venueId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	Message string         `json:"message"`
	VenueID int64          `json:"venueId"`
	Count   int            `json:"count"`
	Slots   []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest() (*generateSlots.Request, error) {
	windowStart, err := time.Parse(time.RFC3339, r.WindowStart)
	if err != nil {
		return nil, err
	}

	windowEnd, err := time.Parse(time.RFC3339, r.WindowEnd)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		VenueID:     r.VenueID,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(message string, resp *generateSlots.Response) *GenerateSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			VenueID:   s.VenueID,
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			IsBooked:  s.IsBooked,
		}
	}

	return &GenerateSlotsResponse{
		Message: message,
		VenueID: resp.VenueID,
		Count:   len(slots),
		Slots:   slots,
	}
}
