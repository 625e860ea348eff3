package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// VenueFilter holds the optional directory filters; set fields combine
// with logical AND.
type VenueFilter struct {
	EventType  *string
	District   *string
	GuestCount *int
	MaxPrice   *int
}

type VenueRepository interface {
	FindAll(ctx context.Context, filter VenueFilter) ([]*entity.Venue, error)
	FindFeatured(ctx context.Context, limit int) ([]*entity.Venue, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
}

type venueRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewVenueRepository(db database.Querier, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

const venueColumns = `id, name, district, address, description, capacity_min,
       capacity_max, price_per_person, phone, email, image_url, event_types, created_at`

func (r *venueRepository) FindAll(ctx context.Context, filter VenueFilter) ([]*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE 1=1`
	var args []any

	if filter.EventType != nil {
		args = append(args, "%"+*filter.EventType+"%")
		query += fmt.Sprintf(" AND event_types ILIKE $%d", len(args))
	}
	if filter.District != nil {
		args = append(args, *filter.District)
		query += fmt.Sprintf(" AND district = $%d", len(args))
	}
	if filter.GuestCount != nil {
		args = append(args, *filter.GuestCount)
		query += fmt.Sprintf(" AND capacity_min <= $%d AND capacity_max >= $%d", len(args), len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND price_per_person <= $%d", len(args))
	}

	query += " ORDER BY name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find venues", zap.Error(err))
		return nil, fmt.Errorf("find venues: %w", err)
	}
	defer rows.Close()

	return scanVenues(rows)
}

func (r *venueRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY created_at LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find featured venues", zap.Error(err))
		return nil, fmt.Errorf("find featured venues: %w", err)
	}
	defer rows.Close()

	return scanVenues(rows)
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	var venue entity.Venue
	err := r.db.QueryRow(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.District,
		&venue.Address,
		&venue.Description,
		&venue.CapacityMin,
		&venue.CapacityMax,
		&venue.PricePerPerson,
		&venue.Phone,
		&venue.Email,
		&venue.ImageURL,
		&venue.EventTypes,
		&venue.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return nil, fmt.Errorf("find venue by ID %s: %w", id.String(), err)
	}

	return &venue, nil
}

func scanVenues(rows pgx.Rows) ([]*entity.Venue, error) {
	var venues []*entity.Venue
	for rows.Next() {
		var venue entity.Venue
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.District,
			&venue.Address,
			&venue.Description,
			&venue.CapacityMin,
			&venue.CapacityMax,
			&venue.PricePerPerson,
			&venue.Phone,
			&venue.Email,
			&venue.ImageURL,
			&venue.EventTypes,
			&venue.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, &venue)
	}

	return venues, nil
}
