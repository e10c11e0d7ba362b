package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/turfly/TurfBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CustomerID int64 `json:"customerId"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
// Оба поля опциональны, но хотя бы одно должно быть заполнено.
// Статус оплаты и статус бронирования — независимые оси; завершение оплаты
// (paymentStatus=completed) подтверждает pending бронирование
type UpdateStatusRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID      int64   `json:"customerId"`
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetCustomerBookingsRequest) ToDomainFilter() (domain.CustomerBookingsFilter, error) {
	filter := domain.CustomerBookingsFilter{
		CustomerID:      r.CustomerID,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customerId"`
	VenueID       int64           `json:"venueId"`
	Date          string          `json:"date"`      // "2024-05-01"
	StartTime     string          `json:"startTime"` // "10:00"
	EndTime       string          `json:"endTime"`   // "11:00"
	Sport         string          `json:"sport"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Amount        decimal.Decimal `json:"amount"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		VenueID:       b.VenueID,
		Date:          b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		Sport:         string(b.Sport),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Amount:        b.Amount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	if !domain.IsValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(s), nil
}

// ToDomainPaymentStatus конвертирует строку в domain.PaymentStatus
func ToDomainPaymentStatus(s string) (domain.PaymentStatus, error) {
	if !domain.IsValidPaymentStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.PaymentStatus(s), nil
}
