package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireInvitation(r chi.Router, invitationHandler *adaptor.InvitationHandler) {
	// POST /api/bookings/{id}/invitation - Create or update the invitation
	r.Post("/api/bookings/{id}/invitation", invitationHandler.UpsertInvitation)

	// GET /api/invitations/{token} - Owner dashboard with responses and totals
	r.Get("/api/invitations/{token}", invitationHandler.GetInvitationDashboard)

	// The RSVP routes are the guest-facing side of the shared link
	r.Route("/api/rsvp/{token}", func(r chi.Router) {
		r.Get("/", invitationHandler.GetPublicInvitation)
		r.Post("/", invitationHandler.SubmitRSVP)
	})
}
