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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// StageBooking handles POST /api/venues/{id}/book
func (h *BookingHandler) StageBooking(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	var req request.StageBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	staged, err := h.service.StageBooking(r.Context(), venueID, &req)
	if err != nil {
		h.handleServiceError(w, err, "stage booking")
		return
	}

	utils.ResponseCreated(w, "success", staged)
}

// GetPaymentConfirmation handles GET /api/payment/confirmation
func (h *BookingHandler) GetPaymentConfirmation(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("stage_token")

	staged, err := h.service.GetStagedBooking(r.Context(), token)
	if err != nil {
		h.handleServiceError(w, err, "get staged booking")
		return
	}

	utils.ResponseSuccess(w, "success", staged)
}

// ConfirmPayment handles POST /api/payment/confirmation
func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req request.ConfirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.ConfirmPayment(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "confirm payment")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// SubmitGuestRSVP handles POST /api/bookings/{id}/rsvp
func (h *BookingHandler) SubmitGuestRSVP(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.GuestRSVPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	guest, err := h.service.SubmitGuestRSVP(r.Context(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "submit guest RSVP")
		return
	}

	utils.ResponseCreated(w, "success", guest)
}

// BookHost handles POST /api/hosts/{id}/book
func (h *BookingHandler) BookHost(w http.ResponseWriter, r *http.Request) {
	h.attachAddOn(w, r, usecase.AddOnHost)
}

// BookMusician handles POST /api/musicians/{id}/book
func (h *BookingHandler) BookMusician(w http.ResponseWriter, r *http.Request) {
	h.attachAddOn(w, r, usecase.AddOnMusician)
}

func (h *BookingHandler) attachAddOn(w http.ResponseWriter, r *http.Request, category usecase.AddOnCategory) {
	addOnID := chi.URLParam(r, "id")

	var req request.AddOnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	req.AddOnID = addOnID

	booking, err := h.service.AttachAddOn(r.Context(), category, addOnID, &req)
	if err != nil {
		h.handleServiceError(w, err, "attach add-on")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "no booking data found"),
		strings.Contains(errMsg, "no venue booking found"):
		h.log.Warn(operation+" failed - no booking",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

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
