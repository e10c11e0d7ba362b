package domain

// Default configuration values
const (
	// DefaultSlotDurationMinutes длина слота по умолчанию (один час)
	DefaultSlotDurationMinutes = 60

	// DefaultTimezone гражданский часовой пояс генерации слотов
	DefaultTimezone = "Asia/Kolkata"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, блокирующих временное окно
// Любое неотменённое бронирование считается активным
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
