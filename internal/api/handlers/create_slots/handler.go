package create_slots

import (
	"errors"
	"net/http"

	"github.com/turfly/TurfBookingService/internal/api/handlers"
	generateSlots "github.com/turfly/TurfBookingService/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidWindow      = "invalid availability window, expected RFC3339 timestamps with windowStart before windowEnd"
	msgVenueNotFound      = "venue not found"
	msgInvalidInput       = "invalid slot generation data"
	msgInternalError      = "internal server error"
	msgSlotsGenerated     = "Slots generated successfully"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// respondError отдаёт ошибку с историческим полем "error"
func respondError(w http.ResponseWriter, status int, message string) {
	handlers.RespondJSON(w, status, ErrorResponse{Error: message})
}

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		respondError(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /slots - Failed to parse window: venue_id=%d, error=%v", req.VenueID, err)
		respondError(w, http.StatusBadRequest, msgInvalidWindow)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrVenueNotFound):
			h.logger.Warn("POST /slots - Venue not found: venue_id=%d", req.VenueID)
			respondError(w, http.StatusNotFound, msgVenueNotFound)

		case errors.Is(err, generateSlots.ErrInvalidWindow):
			h.logger.Warn("POST /slots - Invalid window: venue_id=%d, start=%s, end=%s",
				req.VenueID, req.WindowStart, req.WindowEnd)
			respondError(w, http.StatusBadRequest, msgInvalidWindow)

		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: venue_id=%d, error=%v", req.VenueID, err)
			respondError(w, http.StatusBadRequest, msgInvalidInput)

		default:
			h.logger.Error("POST /slots - Failed to generate slots: venue_id=%d, error=%v", req.VenueID, err)
			respondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	h.logger.Info("POST /slots - Slots generated: venue_id=%d, count=%d", result.VenueID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(msgSlotsGenerated, result))
}
