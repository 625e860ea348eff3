package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	// No transition into cancelled is exposed yet; the value exists so
	// rows written by a future cancellation flow stay readable.
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Base
	VenueID         uuid.UUID     `db:"venue_id"`
	UserID          *uuid.UUID    `db:"user_id"` // nullable for legacy rows
	ClientName      string        `db:"client_name"`
	ClientEmail     string        `db:"client_email"`
	ClientPhone     string        `db:"client_phone"`
	EventType       string        `db:"event_type"`
	EventDate       time.Time     `db:"event_date"`
	GuestCount      int           `db:"guest_count"`
	SelectedHallID  *uuid.UUID    `db:"selected_hall_id"`
	SpecialRequests *string       `db:"special_requests"`
	TotalAmount     int           `db:"total_amount"`
	DepositPaid     bool          `db:"deposit_paid"`
	Status          BookingStatus `db:"status"`
}

// AppendSpecialRequest adds a line to the append-only special requests log,
// preserving whatever was there before.
func (b *Booking) AppendSpecialRequest(line string) {
	if b.SpecialRequests == nil || *b.SpecialRequests == "" {
		b.SpecialRequests = &line
		return
	}
	joined := *b.SpecialRequests + "\n" + line
	b.SpecialRequests = &joined
}
