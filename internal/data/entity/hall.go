package entity

import "github.com/google/uuid"

type Hall struct {
	BaseSimple
	VenueID     uuid.UUID `db:"venue_id"`
	Name        string    `db:"name"`
	Capacity    int       `db:"capacity"`
	Description *string   `db:"description"`
	ImageURL    *string   `db:"image_url"`
}
