package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuItemRepository interface {
	FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.MenuItem, error)
}

type menuItemRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewMenuItemRepository(db database.Querier, log *zap.Logger) MenuItemRepository {
	return &menuItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu_item")),
	}
}

func (r *menuItemRepository) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, venue_id, name, category, price, description, created_at
		FROM menu_items
		WHERE venue_id = $1
		ORDER BY category, name
	`

	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		r.log.Error("Failed to find menu items by venue ID",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
		return nil, fmt.Errorf("find menu items by venue ID %s: %w", venueID.String(), err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.VenueID,
			&item.Name,
			&item.Category,
			&item.Price,
			&item.Description,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
