package adaptor

import (
	"venue-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Venue      *VenueHandler
	Booking    *BookingHandler
	Invitation *InvitationHandler
	Roster     *RosterHandler
	Feedback   *FeedbackHandler
	User       *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Venue:      NewVenueHandler(service.Venue, log),
		Booking:    NewBookingHandler(service.Booking, log),
		Invitation: NewInvitationHandler(service.Invitation, log),
		Roster:     NewRosterHandler(service.Roster, log),
		Feedback:   NewFeedbackHandler(service.Feedback, log),
		User:       NewUserHandler(service.Booking, log),
	}
}
