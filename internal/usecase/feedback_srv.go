package usecase

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

// FeedbackExporter mirrors each stored feedback row into an external sink.
type FeedbackExporter interface {
	Append(feedback *entity.Feedback) error
	Path() string
}

type FeedbackService interface {
	SubmitFeedback(ctx context.Context, req *request.FeedbackRequest) (*response.FeedbackResponse, error)
	ExportPath() string
}

type feedbackService struct {
	repo     *repository.Repository
	exporter FeedbackExporter
	log      *zap.Logger
}

func NewFeedbackService(repo *repository.Repository, exporter FeedbackExporter, log *zap.Logger) FeedbackService {
	return &feedbackService{
		repo:     repo,
		exporter: exporter,
		log:      log.With(zap.String("service", "feedback")),
	}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, req *request.FeedbackRequest) (*response.FeedbackResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Feedback validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	feedback := &entity.Feedback{
		Name:           req.Name,
		Email:          req.Email,
		FeedbackType:   req.FeedbackType,
		Rating:         req.Rating,
		Recommendation: req.Recommendation,
		Message:        req.Message,
		Venue:          req.Venue,
		Status:         entity.FeedbackStatusNew,
	}
	feedback.ID = utils.GenerateUUID()

	if err := s.repo.Feedback.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("submit feedback: %w", err)
	}

	// The workbook is a convenience copy; a failed export never fails the
	// submission.
	if err := s.exporter.Append(feedback); err != nil {
		s.log.Warn("Failed to export feedback to workbook",
			zap.Error(err),
			zap.String("feedback_id", feedback.ID.String()),
		)
	}

	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) ExportPath() string {
	return s.exporter.Path()
}
