package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrWindowTaken возвращается, когда окно уже занято активным бронированием
	// Сюда транслируется нарушение частичного уникального индекса по
	// (venue_id, booking_date, start_time, end_time) WHERE status <> 'cancelled'
	ErrWindowTaken = errors.New("booking.repository: time window already booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
