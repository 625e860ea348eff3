package repository

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindUpcomingByEmail(ctx context.Context, email string) (*entity.Booking, error)
	FindLatestByEmail(ctx context.Context, email string) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
}

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.Querier, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, venue_id, user_id, client_name, client_email, client_phone,
	event_type, event_date, guest_count, selected_hall_id, special_requests,
	total_amount, deposit_paid, status, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, venue_id, user_id, client_name, client_email, client_phone,
			event_type, event_date, guest_count, selected_hall_id, special_requests,
			total_amount, deposit_paid, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		booking.ID,
		booking.VenueID,
		booking.UserID,
		booking.ClientName,
		booking.ClientEmail,
		booking.ClientPhone,
		booking.EventType,
		booking.EventDate,
		booking.GuestCount,
		booking.SelectedHallID,
		booking.SpecialRequests,
		booking.TotalAmount,
		booking.DepositPaid,
		booking.Status,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("client_email", booking.ClientEmail),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// FindUpcomingByEmail returns the soonest booking whose event date has not
// passed, preferring the most recently created one on a date tie.
func (r *bookingRepository) FindUpcomingByEmail(ctx context.Context, email string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE client_email = $1 AND event_date >= CURRENT_DATE
		ORDER BY event_date ASC, created_at DESC
		LIMIT 1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("Failed to find upcoming booking by email",
			zap.Error(err),
			zap.String("client_email", email),
		)
		return nil, fmt.Errorf("find upcoming booking by email %s: %w", email, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindLatestByEmail(ctx context.Context, email string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE client_email = $1
		ORDER BY created_at DESC
		LIMIT 1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("Failed to find latest booking by email",
			zap.Error(err),
			zap.String("client_email", email),
		)
		return nil, fmt.Errorf("find latest booking by email %s: %w", email, err)
	}

	return booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET user_id = $2, client_name = $3, client_email = $4, client_phone = $5,
			event_type = $6, event_date = $7, guest_count = $8, selected_hall_id = $9,
			special_requests = $10, total_amount = $11, deposit_paid = $12, status = $13,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		booking.ID,
		booking.UserID,
		booking.ClientName,
		booking.ClientEmail,
		booking.ClientPhone,
		booking.EventType,
		booking.EventDate,
		booking.GuestCount,
		booking.SelectedHallID,
		booking.SpecialRequests,
		booking.TotalAmount,
		booking.DepositPaid,
		booking.Status,
	).Scan(&booking.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.VenueID,
		&booking.UserID,
		&booking.ClientName,
		&booking.ClientEmail,
		&booking.ClientPhone,
		&booking.EventType,
		&booking.EventDate,
		&booking.GuestCount,
		&booking.SelectedHallID,
		&booking.SpecialRequests,
		&booking.TotalAmount,
		&booking.DepositPaid,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
