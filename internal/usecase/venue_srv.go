package usecase

import (
	"context"
	"fmt"

	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const featuredVenueLimit = 6

type VenueService interface {
	ListVenues(ctx context.Context, filter repository.VenueFilter) ([]response.VenueResponse, error)
	GetFeaturedVenues(ctx context.Context) ([]response.VenueResponse, error)
	GetVenueByID(ctx context.Context, venueID string) (*response.VenueDetailResponse, error)
}

type venueService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVenueService(repo *repository.Repository, log *zap.Logger) VenueService {
	return &venueService{
		repo: repo,
		log:  log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) ListVenues(ctx context.Context, filter repository.VenueFilter) ([]response.VenueResponse, error) {
	venues, err := s.repo.Venue.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return response.VenuesToResponse(venues), nil
}

func (s *venueService) GetFeaturedVenues(ctx context.Context) ([]response.VenueResponse, error) {
	venues, err := s.repo.Venue.FindFeatured(ctx, featuredVenueLimit)
	if err != nil {
		return nil, fmt.Errorf("list featured venues: %w", err)
	}
	return response.VenuesToResponse(venues), nil
}

func (s *venueService) GetVenueByID(ctx context.Context, venueID string) (*response.VenueDetailResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID format %s: %w", venueID, err)
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if venue == nil {
		return nil, fmt.Errorf("venue %s not found", venueID)
	}

	halls, err := s.repo.Hall.FindByVenueID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue halls: %w", err)
	}

	menu, err := s.repo.MenuItem.FindByVenueID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue menu: %w", err)
	}

	detail := response.VenueToDetailResponse(venue, halls, menu)
	return &detail, nil
}
