package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvitedGuest is a response collected through an invitation link.
type InvitedGuest struct {
	BaseSimple
	InvitationID        uuid.UUID  `db:"invitation_id"`
	Name                string     `db:"name"`
	Email               *string    `db:"email"`
	Phone               *string    `db:"phone"`
	PlusOne             int        `db:"plus_one"`
	RSVPStatus          RSVPStatus `db:"rsvp_status"`
	DietaryRestrictions *string    `db:"dietary_restrictions"`
	MessageToHost       *string    `db:"message_to_host"`
	RespondedAt         *time.Time `db:"responded_at"`
}
