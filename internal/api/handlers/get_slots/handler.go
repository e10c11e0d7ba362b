package get_slots

import (
	"net/http"
	"strconv"
	"time"

	"github.com/turfly/TurfBookingService/internal/api/handlers"
	"github.com/turfly/TurfBookingService/internal/domain"
	"github.com/turfly/TurfBookingService/internal/service/slots/models"
	"github.com/turfly/TurfBookingService/pkg/ptr"
)

const (
	msgInvalidVenueID  = "invalid venue ID"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidIsBooked = "invalid isBooked value, expected true or false"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: venueId, date (YYYY-MM-DD), isBooked - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListSlotsRequest{}
	query := r.URL.Query()

	// Фильтр по площадке
	if venueIDStr := query.Get("venueId"); venueIDStr != "" {
		venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
		if err != nil || venueID <= 0 {
			h.logger.Warn("GET /slots - Invalid venue ID: %s", venueIDStr)
			handlers.RespondBadRequest(w, msgInvalidVenueID)
			return
		}
		req.VenueID = ptr.Ptr(venueID)
	}

	// Фильтр по дате
	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = ptr.Ptr(date)
	}

	// Фильтр по занятости
	if isBookedStr := query.Get("isBooked"); isBookedStr != "" {
		isBooked, err := strconv.ParseBool(isBookedStr)
		if err != nil {
			h.logger.Warn("GET /slots - Invalid isBooked: %s", isBookedStr)
			handlers.RespondBadRequest(w, msgInvalidIsBooked)
			return
		}
		req.IsBooked = ptr.Ptr(isBooked)
	}

	slots, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Slots listed: count=%d", len(slots))
	// Существующие клиенты ждут голый массив, без объекта-обёртки
	handlers.RespondJSON(w, http.StatusOK, slots)
}
