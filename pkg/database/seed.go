package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type seedVenue struct {
	name, district, address, description string
	capacityMin, capacityMax, price      int
	phone, email, eventTypes             string
	halls                                []seedHall
	menu                                 []seedMenuItem
}

type seedHall struct {
	name        string
	capacity    int
	description string
}

type seedMenuItem struct {
	name, category string
	price          int
	description    string
}

var seedVenues = []seedVenue{
	{
		name: "Grand Almaty Hotel", district: "Bostandyk",
		address:     "Al-Farabi Avenue 77, Almaty",
		description: "Elegant venue perfect for weddings and corporate events",
		capacityMin: 50, capacityMax: 300, price: 12000,
		phone: "+7 727 291 4747", email: "events@grandalmaty.kz",
		eventTypes: "wedding,corporate_event,tusau_keser",
		halls: []seedHall{
			{"Small Banquet Hall", 80, "Intimate setting for smaller gatherings"},
			{"Grand Ballroom", 250, "Spacious hall for large celebrations"},
		},
		menu: []seedMenuItem{
			{"Beshbarmak", "main", 3500, "Traditional Kazakh dish"},
			{"Pilaf", "main", 2800, "Aromatic rice with meat"},
			{"Baursak", "appetizer", 1200, "Traditional fried bread"},
			{"Wedding Cake", "dessert", 15000, "Custom wedding cake (per cake)"},
		},
	},
	{
		name: "Kok-Tobe Restaurant", district: "Medeu",
		address:     "Kok-Tobe Hill, Almaty",
		description: "Stunning mountain views for memorable celebrations",
		capacityMin: 30, capacityMax: 200, price: 15000,
		phone: "+7 727 273 5555", email: "info@koktobe.kz",
		eventTypes: "wedding,tusau_keser,kudalyk",
		halls: []seedHall{
			{"Terrace Hall", 120, "Open-air dining with city views"},
			{"Mountain View Hall", 180, "Indoor hall with panoramic windows"},
		},
		menu: []seedMenuItem{
			{"Beshbarmak with Lamb", "main", 4000, "Traditional Kazakh dish with lamb (600g)"},
			{"Manti with Meat", "main", 3400, "Traditional dumplings with meat (450g)"},
			{"Shubat", "drink", 800, "Fermented camel milk"},
		},
	},
	{
		name: "Navat Restaurant", district: "Almaly",
		address:     "Abay Avenue 150, Almaty",
		description: "Authentic Kazakh cuisine, perfect for family gatherings and celebrations",
		capacityMin: 50, capacityMax: 150, price: 2700,
		phone: "+7 727 123 4567", email: "info@navat.kz",
		eventTypes: "corporate_event,birthday,friendly_gatherings,casual_celebrations",
		halls: []seedHall{
			{"Main Dining Hall", 80, "Traditional Kazakh dining experience"},
			{"Private Banquet Room", 120, "Intimate space for special occasions"},
		},
		menu: []seedMenuItem{
			{"Beshbarmak with Horse Meat", "main", 4700, "Traditional Kazakh dish with horse meat (600g)"},
			{"Pilaf Toy Ashi", "main", 3100, "Traditional rice pilaf (450g)"},
			{"Lamb Rib Kebab", "main", 3800, "Grilled lamb ribs (250g)"},
			{"Ice Tea Orange", "drink", 1800, "Orange flavored iced tea (500ml)"},
		},
	},
}

// SeedSampleData populates the venue directory on an empty database.
func SeedSampleData(ctx context.Context, db PgxIface, log *zap.Logger) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM venues`).Scan(&count); err != nil {
		return fmt.Errorf("count venues: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, v := range seedVenues {
		venueID := uuid.New()
		_, err := db.Exec(ctx, `
			INSERT INTO venues (id, name, district, address, description, capacity_min,
			                    capacity_max, price_per_person, phone, email, event_types)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, venueID, v.name, v.district, v.address, v.description,
			v.capacityMin, v.capacityMax, v.price, v.phone, v.email, v.eventTypes)
		if err != nil {
			return fmt.Errorf("seed venue %s: %w", v.name, err)
		}

		for _, h := range v.halls {
			_, err := db.Exec(ctx, `
				INSERT INTO halls (id, venue_id, name, capacity, description)
				VALUES ($1, $2, $3, $4, $5)
			`, uuid.New(), venueID, h.name, h.capacity, h.description)
			if err != nil {
				return fmt.Errorf("seed hall %s: %w", h.name, err)
			}
		}

		for _, m := range v.menu {
			_, err := db.Exec(ctx, `
				INSERT INTO menu_items (id, venue_id, name, category, price, description)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, uuid.New(), venueID, m.name, m.category, m.price, m.description)
			if err != nil {
				return fmt.Errorf("seed menu item %s: %w", m.name, err)
			}
		}
	}

	log.Info("Sample venues seeded", zap.Int("venues", len(seedVenues)))
	return nil
}
