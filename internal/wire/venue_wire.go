package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVenue(r chi.Router, venueHandler *adaptor.VenueHandler) {
	r.Route("/api/venues", func(r chi.Router) {
		// GET /api/venues - Venue directory with optional filters
		r.Get("/", venueHandler.ListVenues)

		// GET /api/venues/featured - Landing-page selection
		r.Get("/featured", venueHandler.GetFeaturedVenues)

		// GET /api/venues/{id} - Venue detail with halls and menu
		r.Get("/{id}", venueHandler.GetVenueByID)
	})
}
