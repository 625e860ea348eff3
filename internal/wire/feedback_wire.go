package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFeedback(r chi.Router, feedbackHandler *adaptor.FeedbackHandler) {
	// POST /api/feedback - Submit feedback (stored and mirrored to Excel)
	r.Post("/api/feedback", feedbackHandler.SubmitFeedback)

	// GET /api/feedback/export - Download the Excel workbook
	r.Get("/api/feedback/export", feedbackHandler.ExportFeedback)
}
