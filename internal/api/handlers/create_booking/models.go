package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/turfly/TurfBookingService/internal/domain"
	createBooking "github.com/turfly/TurfBookingService/internal/usecase/create_booking"
	"github.com/turfly/TurfBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID   int64           `json:"venueId"`
	Date      string          `json:"date"`      // "2025-10-15"
	StartTime string          `json:"startTime"` // "10:00"
	EndTime   string          `json:"endTime"`   // "11:00"
	Sport     string          `json:"sport"`
	Amount    decimal.Decimal `json:"amount"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customerId"`
	VenueID       int64           `json:"venueId"`
	Date          string          `json:"date"`
	StartTime     string          `json:"startTime"`
	EndTime       string          `json:"endTime"`
	Sport         string          `json:"sport"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

// CreateBookingResponse обёртка ответа на создание бронирования
type CreateBookingResponse struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// customerID приходит из контекста аутентификации, не из тела
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим времена начала и конца
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID: customerID,
		VenueID:    r.VenueID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		Sport:      r.Sport,
		Amount:     r.Amount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		CustomerID:    resp.CustomerID,
		VenueID:       resp.VenueID,
		Date:          resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		Sport:         resp.Sport,
		Status:        resp.Status,
		PaymentStatus: resp.PaymentStatus,
		Amount:        resp.Amount,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
