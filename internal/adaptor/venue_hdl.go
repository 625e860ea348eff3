package adaptor

import (
	"net/http"
	"strings"

	"venue-booking/internal/data/repository"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// ListVenues handles GET /api/venues
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.VenueFilter{
		GuestCount: utils.ParseOptionalInt(query.Get("guest_count")),
		MaxPrice:   utils.ParseOptionalInt(query.Get("max_price")),
	}
	if eventType := strings.TrimSpace(query.Get("event_type")); eventType != "" {
		filter.EventType = &eventType
	}
	if district := strings.TrimSpace(query.Get("district")); district != "" {
		filter.District = &district
	}

	venues, err := h.service.ListVenues(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "list venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// GetFeaturedVenues handles GET /api/venues/featured
func (h *VenueHandler) GetFeaturedVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.service.GetFeaturedVenues(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get featured venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// GetVenueByID handles GET /api/venues/{id}
func (h *VenueHandler) GetVenueByID(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")

	venue, err := h.service.GetVenueByID(r.Context(), venueID)
	if err != nil {
		h.handleServiceError(w, err, "get venue")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

func (h *VenueHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

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
