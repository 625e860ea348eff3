package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InvitationHandler struct {
	service usecase.InvitationService
	log     *zap.Logger
}

func NewInvitationHandler(service usecase.InvitationService, log *zap.Logger) *InvitationHandler {
	return &InvitationHandler{
		service: service,
		log:     log.With(zap.String("handler", "invitation")),
	}
}

// UpsertInvitation handles POST /api/bookings/{id}/invitation
func (h *InvitationHandler) UpsertInvitation(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.InvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	invitation, err := h.service.UpsertInvitation(r.Context(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "upsert invitation")
		return
	}

	utils.ResponseCreated(w, "success", invitation)
}

// GetInvitationDashboard handles GET /api/invitations/{token}
func (h *InvitationHandler) GetInvitationDashboard(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	dashboard, err := h.service.GetInvitationDashboard(r.Context(), token)
	if err != nil {
		h.handleServiceError(w, err, "get invitation dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}

// GetPublicInvitation handles GET /api/rsvp/{token}
func (h *InvitationHandler) GetPublicInvitation(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	invitation, err := h.service.GetPublicInvitation(r.Context(), token)
	if err != nil {
		h.handleServiceError(w, err, "get public invitation")
		return
	}

	utils.ResponseSuccess(w, "success", invitation)
}

// SubmitRSVP handles POST /api/rsvp/{token}
func (h *InvitationHandler) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req request.SubmitRSVPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.SubmitRSVP(r.Context(), token, &req)
	if err != nil {
		h.handleServiceError(w, err, "submit RSVP")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

func (h *InvitationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
