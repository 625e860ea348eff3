package entity

import "strings"

type Venue struct {
	BaseSimple
	Name           string  `db:"name"`
	District       string  `db:"district"`
	Address        string  `db:"address"`
	Description    *string `db:"description"`
	CapacityMin    int     `db:"capacity_min"`
	CapacityMax    int     `db:"capacity_max"`
	PricePerPerson int     `db:"price_per_person"`
	Phone          *string `db:"phone"`
	Email          *string `db:"email"`
	ImageURL       *string `db:"image_url"`
	EventTypes     string  `db:"event_types"`
}

// EventTypeList splits the comma-joined tag column
func (v *Venue) EventTypeList() []string {
	if v.EventTypes == "" {
		return nil
	}

	parts := strings.Split(v.EventTypes, ",")
	types := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			types = append(types, t)
		}
	}
	return types
}
