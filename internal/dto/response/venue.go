package response

import (
	"venue-booking/internal/data/entity"
)

type VenueResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	District       string   `json:"district"`
	Address        string   `json:"address"`
	Description    *string  `json:"description,omitempty"`
	CapacityMin    int      `json:"capacity_min"`
	CapacityMax    int      `json:"capacity_max"`
	PricePerPerson int      `json:"price_per_person"`
	Phone          *string  `json:"phone,omitempty"`
	Email          *string  `json:"email,omitempty"`
	ImageURL       *string  `json:"image_url,omitempty"`
	EventTypes     []string `json:"event_types"`
}

type HallResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    *string `json:"category,omitempty"`
	Price       int     `json:"price"`
	Description *string `json:"description,omitempty"`
}

type VenueDetailResponse struct {
	VenueResponse
	Halls []HallResponse     `json:"halls"`
	Menu  []MenuItemResponse `json:"menu"`
}

// Helper converters
func VenueToResponse(venue *entity.Venue) VenueResponse {
	return VenueResponse{
		ID:             venue.ID.String(),
		Name:           venue.Name,
		District:       venue.District,
		Address:        venue.Address,
		Description:    venue.Description,
		CapacityMin:    venue.CapacityMin,
		CapacityMax:    venue.CapacityMax,
		PricePerPerson: venue.PricePerPerson,
		Phone:          venue.Phone,
		Email:          venue.Email,
		ImageURL:       venue.ImageURL,
		EventTypes:     venue.EventTypeList(),
	}
}

func VenuesToResponse(venues []*entity.Venue) []VenueResponse {
	result := make([]VenueResponse, 0, len(venues))
	for _, venue := range venues {
		result = append(result, VenueToResponse(venue))
	}
	return result
}

func HallToResponse(hall *entity.Hall) HallResponse {
	return HallResponse{
		ID:          hall.ID.String(),
		Name:        hall.Name,
		Capacity:    hall.Capacity,
		Description: hall.Description,
		ImageURL:    hall.ImageURL,
	}
}

func MenuItemToResponse(item *entity.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		Description: item.Description,
	}
}

func VenueToDetailResponse(venue *entity.Venue, halls []*entity.Hall, menu []*entity.MenuItem) VenueDetailResponse {
	detail := VenueDetailResponse{
		VenueResponse: VenueToResponse(venue),
		Halls:         make([]HallResponse, 0, len(halls)),
		Menu:          make([]MenuItemResponse, 0, len(menu)),
	}
	for _, hall := range halls {
		detail.Halls = append(detail.Halls, HallToResponse(hall))
	}
	for _, item := range menu {
		detail.Menu = append(detail.Menu, MenuItemToResponse(item))
	}
	return detail
}
