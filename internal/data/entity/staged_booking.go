package entity

import (
	"time"

	"github.com/google/uuid"
)

// StagedBooking holds booking-form data between the booking step and the
// payment step. It is addressed by an opaque token, expires on its own, and
// never becomes a Booking row unless payment confirmation succeeds.
type StagedBooking struct {
	Token           uuid.UUID  `db:"token"`
	VenueID         uuid.UUID  `db:"venue_id"`
	ClientName      string     `db:"client_name"`
	ClientEmail     string     `db:"client_email"`
	ClientPhone     string     `db:"client_phone"`
	EventType       string     `db:"event_type"`
	EventDate       time.Time  `db:"event_date"`
	GuestCount      int        `db:"guest_count"`
	SelectedHallID  *uuid.UUID `db:"selected_hall_id"`
	SpecialRequests *string    `db:"special_requests"`
	TotalAmount     int        `db:"total_amount"`
	ExpiresAt       time.Time  `db:"expires_at"`
	CreatedAt       time.Time  `db:"created_at"`
}
