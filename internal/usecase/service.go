package usecase

import (
	"venue-booking/internal/data/repository"
	"venue-booking/internal/roster"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Venue      VenueService
	Booking    BookingService
	Invitation InvitationService
	Feedback   FeedbackService
	Roster     RosterService
}

func NewService(repo *repository.Repository, loader *roster.Loader, exporter FeedbackExporter, config *utils.Config, log *zap.Logger) *Service {
	identity := NewIdentityService(log)
	return &Service{
		Venue:      NewVenueService(repo, log),
		Booking:    NewBookingService(repo, identity, loader, config, log),
		Invitation: NewInvitationService(repo, log),
		Feedback:   NewFeedbackService(repo, exporter, log),
		Roster:     NewRosterService(loader, log),
	}
}
