package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"go.uber.org/zap"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
}

type feedbackRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewFeedbackRepository(db database.Querier, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (id, name, email, feedback_type, rating, recommendation, message, venue, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		feedback.ID,
		feedback.Name,
		feedback.Email,
		feedback.FeedbackType,
		feedback.Rating,
		feedback.Recommendation,
		feedback.Message,
		feedback.Venue,
		feedback.Status,
	).Scan(&feedback.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.String("email", feedback.Email),
		)
		return fmt.Errorf("create feedback: %w", err)
	}

	return nil
}
