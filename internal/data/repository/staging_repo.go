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

type StagingRepository interface {
	Create(ctx context.Context, staged *entity.StagedBooking) error
	FindValidByToken(ctx context.Context, token uuid.UUID) (*entity.StagedBooking, error)
	Delete(ctx context.Context, token uuid.UUID) error
	CleanExpired(ctx context.Context) error
}

type stagingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewStagingRepository(db database.Querier, log *zap.Logger) StagingRepository {
	return &stagingRepository{
		db:  db,
		log: log.With(zap.String("repository", "staging")),
	}
}

func (r *stagingRepository) Create(ctx context.Context, staged *entity.StagedBooking) error {
	query := `
		INSERT INTO staged_bookings (token, venue_id, client_name, client_email, client_phone,
			event_type, event_date, guest_count, selected_hall_id, special_requests,
			total_amount, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		staged.Token,
		staged.VenueID,
		staged.ClientName,
		staged.ClientEmail,
		staged.ClientPhone,
		staged.EventType,
		staged.EventDate,
		staged.GuestCount,
		staged.SelectedHallID,
		staged.SpecialRequests,
		staged.TotalAmount,
		staged.ExpiresAt,
	).Scan(&staged.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create staged booking",
			zap.Error(err),
			zap.String("client_email", staged.ClientEmail),
		)
		return fmt.Errorf("create staged booking: %w", err)
	}

	return nil
}

// FindValidByToken only returns rows that have not passed their expiry.
func (r *stagingRepository) FindValidByToken(ctx context.Context, token uuid.UUID) (*entity.StagedBooking, error) {
	query := `
		SELECT token, venue_id, client_name, client_email, client_phone,
			event_type, event_date, guest_count, selected_hall_id, special_requests,
			total_amount, expires_at, created_at
		FROM staged_bookings
		WHERE token = $1 AND expires_at > NOW()
	`

	var staged entity.StagedBooking
	err := r.db.QueryRow(ctx, query, token).Scan(
		&staged.Token,
		&staged.VenueID,
		&staged.ClientName,
		&staged.ClientEmail,
		&staged.ClientPhone,
		&staged.EventType,
		&staged.EventDate,
		&staged.GuestCount,
		&staged.SelectedHallID,
		&staged.SpecialRequests,
		&staged.TotalAmount,
		&staged.ExpiresAt,
		&staged.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("Failed to find staged booking by token", zap.Error(err))
		return nil, fmt.Errorf("find staged booking by token: %w", err)
	}

	return &staged, nil
}

func (r *stagingRepository) Delete(ctx context.Context, token uuid.UUID) error {
	query := `DELETE FROM staged_bookings WHERE token = $1`

	_, err := r.db.Exec(ctx, query, token)
	if err != nil {
		r.log.Error("Failed to delete staged booking", zap.Error(err))
		return fmt.Errorf("delete staged booking: %w", err)
	}

	return nil
}

func (r *stagingRepository) CleanExpired(ctx context.Context) error {
	query := `DELETE FROM staged_bookings WHERE expires_at <= NOW()`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to clean expired staged bookings", zap.Error(err))
		return fmt.Errorf("clean expired staged bookings: %w", err)
	}

	return nil
}
