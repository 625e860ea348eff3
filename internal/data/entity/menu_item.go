package entity

import "github.com/google/uuid"

type MenuItem struct {
	BaseSimple
	VenueID     uuid.UUID `db:"venue_id"`
	Name        string    `db:"name"`
	Category    *string   `db:"category"`
	Price       int       `db:"price"`
	Description *string   `db:"description"`
}
