package reset_codes

import (
	"errors"
	"net/http"

	"github.com/turfly/TurfBookingService/internal/api/handlers"
	"github.com/turfly/TurfBookingService/internal/service/resetcodes"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmailRequired      = "email is required"
	msgCodeRequired       = "email and code are required"
	msgCodeMismatch       = "code is invalid or expired"
	msgCodeIssued         = "Reset code issued"
	msgCodeVerified       = "Reset code verified"
)

type Handler struct {
	service ResetCodeService
	logger  Logger
}

func NewHandler(service ResetCodeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleIssue POST /api/v1/internal/reset-codes
func (h *Handler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	var req IssueCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /internal/reset-codes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	code, err := h.service.Issue(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, resetcodes.ErrInvalidInput):
			h.logger.Warn("POST /internal/reset-codes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgEmailRequired)

		default:
			h.logger.Error("POST /internal/reset-codes - Failed to issue code: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /internal/reset-codes - Code issued: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusCreated, IssueCodeResponse{
		Message: msgCodeIssued,
		Code:    code,
	})
}

// HandleVerify POST /api/v1/internal/reset-codes/verify
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /internal/reset-codes/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.Verify(r.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, resetcodes.ErrCodeMismatch):
			h.logger.Warn("POST /internal/reset-codes/verify - Code mismatch: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgCodeMismatch)

		case errors.Is(err, resetcodes.ErrInvalidInput):
			h.logger.Warn("POST /internal/reset-codes/verify - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgCodeRequired)

		default:
			h.logger.Error("POST /internal/reset-codes/verify - Failed to verify code: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /internal/reset-codes/verify - Code verified: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, VerifyCodeResponse{Message: msgCodeVerified})
}
