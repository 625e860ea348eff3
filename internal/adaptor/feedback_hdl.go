package adaptor

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service usecase.FeedbackService
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log.With(zap.String("handler", "feedback")),
	}
}

// SubmitFeedback handles POST /api/feedback
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req request.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	feedback, err := h.service.SubmitFeedback(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "submit feedback")
		return
	}

	utils.ResponseCreated(w, "success", feedback)
}

// ExportFeedback handles GET /api/feedback/export
func (h *FeedbackHandler) ExportFeedback(w http.ResponseWriter, r *http.Request) {
	path := h.service.ExportPath()
	if _, err := os.Stat(path); err != nil {
		utils.ResponseNotFound(w, "No feedback export available yet")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="feedback_data.xlsx"`)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	http.ServeFile(w, r, path)
}

func (h *FeedbackHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
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
