package get_customer_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/turfly/TurfBookingService/internal/api/handlers"
	"github.com/turfly/TurfBookingService/internal/api/middleware"
	"github.com/turfly/TurfBookingService/internal/service/bookings"
	"github.com/turfly/TurfBookingService/internal/service/bookings/models"
	"github.com/turfly/TurfBookingService/pkg/ptr"
)

const (
	msgInvalidCustomerID = "invalid customer ID"
	msgInvalidStatus     = "invalid status filter"
	msgMissingUserID     = "missing user ID"
	msgForbidden         = "access denied"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/bookings
// Query params: status (опционально), includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerIDStr := vars["customerId"]

	customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
	if err != nil || customerID <= 0 {
		h.logger.Warn("GET /customers/{id}/bookings - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	// Клиент может смотреть только свою историю
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if authUserID != customerID {
		h.logger.Warn("GET /customers/{id}/bookings - Access denied: customer_id=%d, auth_user_id=%d",
			customerID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetCustomerBookingsRequest{CustomerID: customerID}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}
	if includeInactiveStr := query.Get("includeInactive"); includeInactiveStr != "" {
		includeInactive, parseErr := strconv.ParseBool(includeInactiveStr)
		if parseErr != nil {
			h.logger.Warn("GET /customers/{id}/bookings - Invalid includeInactive: %s", includeInactiveStr)
			handlers.RespondBadRequest(w, "invalid includeInactive value, expected true or false")
			return
		}
		req.IncludeInactive = includeInactive
	}

	result, err := h.service.GetCustomerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/bookings - Invalid input: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /customers/{id}/bookings - Failed to get bookings: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/bookings - Bookings retrieved: customer_id=%d, count=%d",
		customerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
