package create_booking

import (
	"context"
	"time"

	"github.com/turfly/TurfBookingService/internal/domain"
	"github.com/turfly/TurfBookingService/internal/integrations/accountservice"
	"github.com/turfly/TurfBookingService/pkg/types"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindActiveByWindow(ctx context.Context, venueID int64, date time.Time, startTime, endTime types.TimeString) (*domain.Booking, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	SetBooked(ctx context.Context, venueID int64, date time.Time, startTime, endTime types.TimeString, isBooked bool) error
}

// AccountServiceClient интерфейс клиента сервиса аккаунтов
type AccountServiceClient interface {
	GetCustomer(ctx context.Context, customerID int64) (*accountservice.Customer, error)
	GetVenue(ctx context.Context, venueID int64) (*accountservice.Venue, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
