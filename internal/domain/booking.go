package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/turfly/TurfBookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment status of a booking (independent axis)
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Booking represents a customer's reservation of one venue/date/time window
type Booking struct {
	ID            int64
	CustomerID    int64
	VenueID       int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Sport         Sport
	Status        BookingStatus
	PaymentStatus PaymentStatus
	Amount        decimal.Decimal

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its time window
// Any non-cancelled booking is active regardless of payment status
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanTransitionTo validates the booking status state machine:
// pending -> confirmed | cancelled, confirmed -> cancelled, cancelled is terminal
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// IsValidBookingStatus returns true if s is a known booking status
func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// IsValidPaymentStatus returns true if s is a known payment status
func IsValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// CustomerBookingsFilter фильтр для получения бронирований клиента
type CustomerBookingsFilter struct {
	CustomerID      int64          // Обязательный параметр
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
