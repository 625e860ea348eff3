package usecase

import (
	"fmt"
	"strings"

	"venue-booking/internal/dto/response"
	"venue-booking/internal/roster"

	"go.uber.org/zap"
)

// RosterFilter holds the optional roster listing filters; set fields
// combine with logical AND.
type RosterFilter struct {
	Language *string
	Genre    *string
	City     *string
	MaxPrice *int
}

type RosterService interface {
	ListHosts(filter RosterFilter) ([]response.RosterRecordResponse, error)
	GetHost(hostID string) (*response.RosterRecordResponse, error)
	ListMusicians(filter RosterFilter) ([]response.RosterRecordResponse, error)
	GetMusician(musicianID string) (*response.RosterRecordResponse, error)
}

type rosterService struct {
	loader *roster.Loader
	log    *zap.Logger
}

func NewRosterService(loader *roster.Loader, log *zap.Logger) RosterService {
	return &rosterService{
		loader: loader,
		log:    log.With(zap.String("service", "roster")),
	}
}

func (s *rosterService) ListHosts(filter RosterFilter) ([]response.RosterRecordResponse, error) {
	return s.list(AddOnHost, filter)
}

func (s *rosterService) GetHost(hostID string) (*response.RosterRecordResponse, error) {
	return s.get(AddOnHost, hostID)
}

func (s *rosterService) ListMusicians(filter RosterFilter) ([]response.RosterRecordResponse, error) {
	return s.list(AddOnMusician, filter)
}

func (s *rosterService) GetMusician(musicianID string) (*response.RosterRecordResponse, error) {
	return s.get(AddOnMusician, musicianID)
}

func (s *rosterService) list(category AddOnCategory, filter RosterFilter) ([]response.RosterRecordResponse, error) {
	records, err := s.loader.Load(category.File)
	if err != nil {
		return nil, fmt.Errorf("load %s roster: %w", category.Label, err)
	}

	filtered := make([]*roster.Record, 0, len(records))
	for _, record := range records {
		if matchesRosterFilter(record, filter) {
			filtered = append(filtered, record)
		}
	}

	return response.RosterRecordsToResponse(filtered), nil
}

func (s *rosterService) get(category AddOnCategory, id string) (*response.RosterRecordResponse, error) {
	records, err := s.loader.Load(category.File)
	if err != nil {
		return nil, fmt.Errorf("load %s roster: %w", category.Label, err)
	}

	for _, record := range records {
		if record.ID == id {
			resp := response.RosterRecordToResponse(record)
			return &resp, nil
		}
	}

	return nil, fmt.Errorf("%s %s not found", category.Label, id)
}

func matchesRosterFilter(record *roster.Record, filter RosterFilter) bool {
	if !containsFold(record.Language, filter.Language) {
		return false
	}
	if !containsFold(record.Genre, filter.Genre) {
		return false
	}
	if !containsFold(record.City, filter.City) {
		return false
	}
	// Records without a parseable price pass the price filter; only a
	// known price above the ceiling excludes a record.
	if filter.MaxPrice != nil {
		if price := record.ResolvedPrice(); price > 0 && price > *filter.MaxPrice {
			return false
		}
	}
	return true
}

func containsFold(value string, needle *string) bool {
	if needle == nil || *needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(*needle))
}
