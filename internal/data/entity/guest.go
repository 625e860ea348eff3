package entity

import "github.com/google/uuid"

type RSVPStatus string

const (
	RSVPStatusPending      RSVPStatus = "pending"
	RSVPStatusAttending    RSVPStatus = "attending"
	RSVPStatusNotAttending RSVPStatus = "not_attending"
)

// Guest is the legacy direct-RSVP record tied to a booking, distinct from
// the invitation-link path.
type Guest struct {
	BaseSimple
	BookingID  uuid.UUID  `db:"booking_id"`
	Name       string     `db:"name"`
	Email      *string    `db:"email"`
	Phone      *string    `db:"phone"`
	RSVPStatus RSVPStatus `db:"rsvp_status"`
}
