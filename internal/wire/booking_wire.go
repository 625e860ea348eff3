package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, userHandler *adaptor.UserHandler) {
	// POST /api/venues/{id}/book - Stage a booking for the payment step
	r.Post("/api/venues/{id}/book", bookingHandler.StageBooking)

	// Payment confirmation works off the stage token, not a booking ID
	r.Route("/api/payment/confirmation", func(r chi.Router) {
		r.Get("/", bookingHandler.GetPaymentConfirmation)
		r.Post("/", bookingHandler.ConfirmPayment)
	})

	r.Route("/api/bookings/{id}", func(r chi.Router) {
		// GET /api/bookings/{id} - Booking detail with guest list
		r.Get("/", bookingHandler.GetBookingByID)

		// POST /api/bookings/{id}/rsvp - Record a simple guest RSVP
		r.Post("/rsvp", bookingHandler.SubmitGuestRSVP)
	})

	// POST /api/profile - Profile lookup by email
	r.Post("/api/profile", userHandler.GetProfile)
}
