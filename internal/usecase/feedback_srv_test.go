package usecase

import (
	"context"
	"errors"
	"testing"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeExporter struct {
	appended []*entity.Feedback
	fail     bool
}

func (f *fakeExporter) Append(feedback *entity.Feedback) error {
	if f.fail {
		return errors.New("disk full")
	}
	f.appended = append(f.appended, feedback)
	return nil
}

func (f *fakeExporter) Path() string {
	return "static/feedback_data.xlsx"
}

func feedbackRequest() *request.FeedbackRequest {
	return &request.FeedbackRequest{
		Name:           "Aigerim",
		Email:          "aigerim@example.com",
		FeedbackType:   "compliment",
		Rating:         5,
		Recommendation: "definitely",
		Message:        "Wonderful celebration, thank you",
	}
}

func TestSubmitFeedbackStoresAndExports(t *testing.T) {
	repo := newFakeRepository()
	exporter := &fakeExporter{}
	service := NewFeedbackService(repo, exporter, zap.NewNop())

	feedback, err := service.SubmitFeedback(context.Background(), feedbackRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.FeedbackStatusNew, feedback.Status)
	assert.Len(t, repo.Feedback.(*fakeFeedbackRepo).feedback, 1)
	assert.Len(t, exporter.appended, 1)
}

func TestSubmitFeedbackSurvivesExportFailure(t *testing.T) {
	repo := newFakeRepository()
	service := NewFeedbackService(repo, &fakeExporter{fail: true}, zap.NewNop())

	_, err := service.SubmitFeedback(context.Background(), feedbackRequest())
	require.NoError(t, err)

	assert.Len(t, repo.Feedback.(*fakeFeedbackRepo).feedback, 1)
}

func TestSubmitFeedbackValidatesRating(t *testing.T) {
	repo := newFakeRepository()
	service := NewFeedbackService(repo, &fakeExporter{}, zap.NewNop())

	req := feedbackRequest()
	req.Rating = 6

	_, err := service.SubmitFeedback(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, repo.Feedback.(*fakeFeedbackRepo).feedback)
}
