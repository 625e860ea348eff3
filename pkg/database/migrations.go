package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// RunMigrations creates all tables idempotently at startup.
func RunMigrations(ctx context.Context, db PgxIface, log *zap.Logger) error {
	migrations := []string{
		createUsersTable,
		createVenuesTable,
		createHallsTable,
		createMenuItemsTable,
		createBookingsTable,
		createGuestsTable,
		createFeedbackTable,
		createInvitationsTable,
		createInvitedGuestsTable,
		createStagedBookingsTable,
		createBookingsEmailIndex,
		createInvitedGuestsInvitationIndex,
		createStagedBookingsExpiryIndex,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info("Database migrations completed", zap.Int("steps", len(migrations)))
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(100) UNIQUE NOT NULL,
    phone VARCHAR(20) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createVenuesTable = `
CREATE TABLE IF NOT EXISTS venues (
    id UUID PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    district VARCHAR(50) NOT NULL,
    address VARCHAR(200) NOT NULL,
    description TEXT,
    capacity_min INTEGER NOT NULL,
    capacity_max INTEGER NOT NULL,
    price_per_person INTEGER NOT NULL,
    phone VARCHAR(20),
    email VARCHAR(100),
    image_url VARCHAR(200),
    event_types VARCHAR(200),
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createHallsTable = `
CREATE TABLE IF NOT EXISTS halls (
    id UUID PRIMARY KEY,
    venue_id UUID NOT NULL REFERENCES venues(id) ON DELETE CASCADE,
    name VARCHAR(100) NOT NULL,
    capacity INTEGER NOT NULL,
    description TEXT,
    image_url VARCHAR(200),
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createMenuItemsTable = `
CREATE TABLE IF NOT EXISTS menu_items (
    id UUID PRIMARY KEY,
    venue_id UUID NOT NULL REFERENCES venues(id) ON DELETE CASCADE,
    name VARCHAR(200) NOT NULL,
    category VARCHAR(50),
    price INTEGER NOT NULL,
    description TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id UUID PRIMARY KEY,
    venue_id UUID NOT NULL REFERENCES venues(id),
    user_id UUID REFERENCES users(id),
    client_name VARCHAR(100) NOT NULL,
    client_email VARCHAR(100) NOT NULL,
    client_phone VARCHAR(20) NOT NULL,
    event_type VARCHAR(50) NOT NULL,
    event_date DATE NOT NULL,
    guest_count INTEGER NOT NULL,
    selected_hall_id UUID REFERENCES halls(id),
    special_requests TEXT,
    total_amount INTEGER NOT NULL DEFAULT 0,
    deposit_paid BOOLEAN NOT NULL DEFAULT FALSE,
    status VARCHAR(20) NOT NULL DEFAULT 'pending',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createGuestsTable = `
CREATE TABLE IF NOT EXISTS guests (
    id UUID PRIMARY KEY,
    booking_id UUID NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(100),
    phone VARCHAR(20),
    rsvp_status VARCHAR(20) NOT NULL DEFAULT 'pending',
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createFeedbackTable = `
CREATE TABLE IF NOT EXISTS feedback (
    id UUID PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(100) NOT NULL,
    feedback_type VARCHAR(50) NOT NULL,
    rating INTEGER NOT NULL,
    recommendation VARCHAR(50),
    message TEXT NOT NULL,
    venue VARCHAR(100),
    status VARCHAR(20) NOT NULL DEFAULT 'new',
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createInvitationsTable = `
CREATE TABLE IF NOT EXISTS invitations (
    id UUID PRIMARY KEY,
    booking_id UUID NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
    title VARCHAR(200) NOT NULL,
    message TEXT NOT NULL,
    event_time VARCHAR(50),
    dress_code VARCHAR(100),
    additional_info TEXT,
    unique_token VARCHAR(100) UNIQUE NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createInvitedGuestsTable = `
CREATE TABLE IF NOT EXISTS invited_guests (
    id UUID PRIMARY KEY,
    invitation_id UUID NOT NULL REFERENCES invitations(id) ON DELETE CASCADE,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(100),
    phone VARCHAR(20),
    plus_one INTEGER NOT NULL DEFAULT 0,
    rsvp_status VARCHAR(20) NOT NULL DEFAULT 'pending',
    dietary_restrictions VARCHAR(200),
    message_to_host TEXT,
    responded_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createStagedBookingsTable = `
CREATE TABLE IF NOT EXISTS staged_bookings (
    token UUID PRIMARY KEY,
    venue_id UUID NOT NULL REFERENCES venues(id),
    client_name VARCHAR(100) NOT NULL,
    client_email VARCHAR(100) NOT NULL,
    client_phone VARCHAR(20) NOT NULL,
    event_type VARCHAR(50) NOT NULL,
    event_date DATE NOT NULL,
    guest_count INTEGER NOT NULL,
    selected_hall_id UUID REFERENCES halls(id),
    special_requests TEXT,
    total_amount INTEGER NOT NULL,
    expires_at TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createBookingsEmailIndex = `
CREATE INDEX IF NOT EXISTS idx_bookings_client_email ON bookings(client_email);`

const createInvitedGuestsInvitationIndex = `
CREATE INDEX IF NOT EXISTS idx_invited_guests_invitation ON invited_guests(invitation_id);`

const createStagedBookingsExpiryIndex = `
CREATE INDEX IF NOT EXISTS idx_staged_bookings_expires ON staged_bookings(expires_at);`
