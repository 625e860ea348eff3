package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoster(r chi.Router, rosterHandler *adaptor.RosterHandler, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/hosts", func(r chi.Router) {
		// GET /api/hosts - Host roster with optional filters
		r.Get("/", rosterHandler.ListHosts)

		// GET /api/hosts/{id} - Host detail
		r.Get("/{id}", rosterHandler.GetHost)

		// POST /api/hosts/{id}/book - Attach host to the client's booking
		r.Post("/{id}/book", bookingHandler.BookHost)
	})

	r.Route("/api/musicians", func(r chi.Router) {
		// GET /api/musicians - Musician roster with optional filters
		r.Get("/", rosterHandler.ListMusicians)

		// GET /api/musicians/{id} - Musician detail
		r.Get("/{id}", rosterHandler.GetMusician)

		// POST /api/musicians/{id}/book - Attach musician to the client's booking
		r.Post("/{id}/book", bookingHandler.BookMusician)
	})
}
