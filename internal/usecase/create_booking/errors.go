package create_booking

import "errors"

var (
	// ErrMissingField возвращается, когда обязательное поле запроса не заполнено
	ErrMissingField = errors.New("create_booking: missing required field")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrSportNotOffered возвращается, когда вид спорта не заявлен площадкой
	ErrSportNotOffered = errors.New("create_booking: sport is not offered at this venue")

	// ErrSlotConflict возвращается, когда окно занято активным бронированием
	// Повторная отправка уже принятой заявки также получает этот отказ:
	// любое неотменённое бронирование блокирует окно
	ErrSlotConflict = errors.New("create_booking: time slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
