package request

type FeedbackRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Email          string  `json:"email" validate:"required,email"`
	FeedbackType   string  `json:"feedback_type" validate:"required,oneof=compliment suggestion complaint general"`
	Rating         int     `json:"rating" validate:"required,min=1,max=5"`
	Recommendation string  `json:"recommendation" validate:"required,oneof=definitely probably maybe probably_not definitely_not"`
	Message        string  `json:"message" validate:"required,min=2"`
	Venue          *string `json:"venue,omitempty"`
}
