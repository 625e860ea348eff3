package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Guest, error)
}

type guestRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewGuestRepository(db database.Querier, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (id, booking_id, name, email, phone, rsvp_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		guest.ID,
		guest.BookingID,
		guest.Name,
		guest.Email,
		guest.Phone,
		guest.RSVPStatus,
	).Scan(&guest.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("booking_id", guest.BookingID.String()),
		)
		return fmt.Errorf("create guest: %w", err)
	}

	return nil
}

func (r *guestRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Guest, error) {
	query := `
		SELECT id, booking_id, name, email, phone, rsvp_status, created_at
		FROM guests
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find guests by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find guests by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var guests []*entity.Guest
	for rows.Next() {
		var guest entity.Guest
		err := rows.Scan(
			&guest.ID,
			&guest.BookingID,
			&guest.Name,
			&guest.Email,
			&guest.Phone,
			&guest.RSVPStatus,
			&guest.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan guest row: %w", err)
		}
		guests = append(guests, &guest)
	}

	return guests, nil
}
