package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type FeedbackResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	FeedbackType   string                `json:"feedback_type"`
	Rating         int                   `json:"rating"`
	Recommendation string                `json:"recommendation"`
	Message        string                `json:"message"`
	Venue          *string               `json:"venue,omitempty"`
	Status         entity.FeedbackStatus `json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
}

func FeedbackToResponse(feedback *entity.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:             feedback.ID.String(),
		Name:           feedback.Name,
		Email:          feedback.Email,
		FeedbackType:   feedback.FeedbackType,
		Rating:         feedback.Rating,
		Recommendation: feedback.Recommendation,
		Message:        feedback.Message,
		Venue:          feedback.Venue,
		Status:         feedback.Status,
		CreatedAt:      feedback.CreatedAt,
	}
}
