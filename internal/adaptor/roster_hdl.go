package adaptor

import (
	"net/http"
	"strings"

	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RosterHandler struct {
	service usecase.RosterService
	log     *zap.Logger
}

func NewRosterHandler(service usecase.RosterService, log *zap.Logger) *RosterHandler {
	return &RosterHandler{
		service: service,
		log:     log.With(zap.String("handler", "roster")),
	}
}

// ListHosts handles GET /api/hosts
func (h *RosterHandler) ListHosts(w http.ResponseWriter, r *http.Request) {
	hosts, err := h.service.ListHosts(rosterFilterFromQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "list hosts")
		return
	}

	utils.ResponseSuccess(w, "success", hosts)
}

// GetHost handles GET /api/hosts/{id}
func (h *RosterHandler) GetHost(w http.ResponseWriter, r *http.Request) {
	host, err := h.service.GetHost(chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get host")
		return
	}

	utils.ResponseSuccess(w, "success", host)
}

// ListMusicians handles GET /api/musicians
func (h *RosterHandler) ListMusicians(w http.ResponseWriter, r *http.Request) {
	musicians, err := h.service.ListMusicians(rosterFilterFromQuery(r))
	if err != nil {
		h.handleServiceError(w, err, "list musicians")
		return
	}

	utils.ResponseSuccess(w, "success", musicians)
}

// GetMusician handles GET /api/musicians/{id}
func (h *RosterHandler) GetMusician(w http.ResponseWriter, r *http.Request) {
	musician, err := h.service.GetMusician(chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get musician")
		return
	}

	utils.ResponseSuccess(w, "success", musician)
}

func rosterFilterFromQuery(r *http.Request) usecase.RosterFilter {
	query := r.URL.Query()

	filter := usecase.RosterFilter{
		MaxPrice: utils.ParseOptionalInt(query.Get("max_price")),
	}
	if language := strings.TrimSpace(query.Get("language")); language != "" {
		filter.Language = &language
	}
	if genre := strings.TrimSpace(query.Get("genre")); genre != "" {
		filter.Genre = &genre
	}
	if city := strings.TrimSpace(query.Get("city")); city != "" {
		filter.City = &city
	}
	return filter
}

func (h *RosterHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
