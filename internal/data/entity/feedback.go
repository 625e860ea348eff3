package entity

type FeedbackStatus string

const (
	FeedbackStatusNew      FeedbackStatus = "new"
	FeedbackStatusReviewed FeedbackStatus = "reviewed"
	FeedbackStatusResolved FeedbackStatus = "resolved"
)

type Feedback struct {
	BaseSimple
	Name           string         `db:"name"`
	Email          string         `db:"email"`
	FeedbackType   string         `db:"feedback_type"`
	Rating         int            `db:"rating"`
	Recommendation string         `db:"recommendation"`
	Message        string         `db:"message"`
	Venue          *string        `db:"venue"`
	Status         FeedbackStatus `db:"status"`
}
