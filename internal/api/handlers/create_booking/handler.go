package create_booking

import (
	"errors"
	"net/http"

	"github.com/turfly/TurfBookingService/internal/api/handlers"
	"github.com/turfly/TurfBookingService/internal/api/middleware"
	createBooking "github.com/turfly/TurfBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID      = "missing user ID"
	msgCustomerNotFound   = "customer not found"
	msgVenueNotFound      = "venue not found"
	msgSportNotOffered    = "this sport is not offered at the selected venue"
	msgSlotAlreadyBooked  = "This time slot is already booked"
	msgBookingCreated     = "Booking created successfully"
	msgInvalidInput       = "invalid booking data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем customerID из контекста (через middleware Auth)
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			// Конфликт окна намеренно отдаётся как 400, а не 409 - этого
			// контракта ждут существующие клиенты
			h.logger.Warn("POST /bookings - Slot conflict: customer_id=%d, venue_id=%d, date=%s, start=%s",
				customerID, req.VenueID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrSportNotOffered):
			h.logger.Warn("POST /bookings - Sport not offered: venue_id=%d, sport=%s", req.VenueID, req.Sport)
			handlers.RespondBadRequest(w, msgSportNotOffered)

		case errors.Is(err, createBooking.ErrMissingField),
			errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: customer_id=%d, venue_id=%d, error=%v",
				customerID, req.VenueID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, venue_id=%d, error=%v",
				customerID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d, venue_id=%d",
		result.ID, customerID, req.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, &CreateBookingResponse{
		Message: msgBookingCreated,
		Booking: FromUseCaseResponse(result),
	})
}
