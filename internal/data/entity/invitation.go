package entity

import "github.com/google/uuid"

// Invitation carries the shareable capability link for a booking. The token
// is the sole public identifier; possession of the link grants access.
type Invitation struct {
	Base
	BookingID      uuid.UUID `db:"booking_id"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	EventTime      string    `db:"event_time"`
	DressCode      *string   `db:"dress_code"`
	AdditionalInfo *string   `db:"additional_info"`
	UniqueToken    string    `db:"unique_token"`
}
