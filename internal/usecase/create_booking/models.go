package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/turfly/TurfBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64            // ID клиента
	VenueID    int64            // ID площадки
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала окна (например, "10:00")
	EndTime    types.TimeString // Время конца окна (например, "11:00")
	Sport      string           // Вид спорта (Football, Cricket, Tennis, Badminton)
	Amount     decimal.Decimal  // Сумма бронирования (только фиксация, без списания)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64            // ID созданного бронирования
	CustomerID    int64            // ID клиента
	VenueID       int64            // ID площадки
	BookingDate   time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	EndTime       types.TimeString // Время конца
	Sport         string           // Вид спорта
	Status        string           // Статус бронирования
	PaymentStatus string           // Статус оплаты
	Amount        decimal.Decimal  // Сумма

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
