package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubVenueService struct {
	venues     []response.VenueResponse
	lastFilter repository.VenueFilter
}

func (s *stubVenueService) ListVenues(ctx context.Context, filter repository.VenueFilter) ([]response.VenueResponse, error) {
	s.lastFilter = filter
	return s.venues, nil
}

func (s *stubVenueService) GetFeaturedVenues(ctx context.Context) ([]response.VenueResponse, error) {
	return s.venues, nil
}

func (s *stubVenueService) GetVenueByID(ctx context.Context, venueID string) (*response.VenueDetailResponse, error) {
	for _, v := range s.venues {
		if v.ID == venueID {
			return &response.VenueDetailResponse{VenueResponse: v}, nil
		}
	}
	return nil, fmt.Errorf("venue %s not found", venueID)
}

func newVenueRouter(service *stubVenueService) *chi.Mux {
	handler := NewVenueHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/venues", handler.ListVenues)
	r.Get("/api/venues/{id}", handler.GetVenueByID)
	return r
}

func TestListVenuesParsesFilters(t *testing.T) {
	service := &stubVenueService{venues: []response.VenueResponse{{ID: "v1", Name: "Grand Almaty Hotel"}}}
	router := newVenueRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/venues?event_type=wedding&district=Medeu&guest_count=120&max_price=15000", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, service.lastFilter.EventType)
	assert.Equal(t, "wedding", *service.lastFilter.EventType)
	require.NotNil(t, service.lastFilter.District)
	assert.Equal(t, "Medeu", *service.lastFilter.District)
	require.NotNil(t, service.lastFilter.GuestCount)
	assert.Equal(t, 120, *service.lastFilter.GuestCount)
	require.NotNil(t, service.lastFilter.MaxPrice)
	assert.Equal(t, 15000, *service.lastFilter.MaxPrice)

	var body struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
}

func TestListVenuesIgnoresJunkFilters(t *testing.T) {
	service := &stubVenueService{}
	router := newVenueRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/venues?guest_count=abc&max_price=", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, service.lastFilter.GuestCount)
	assert.Nil(t, service.lastFilter.MaxPrice)
}

func TestGetVenueByIDNotFound(t *testing.T) {
	router := newVenueRouter(&stubVenueService{})

	req := httptest.NewRequest(http.MethodGet, "/api/venues/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
