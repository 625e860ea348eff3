package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type StagedBookingResponse struct {
	StageToken  string    `json:"stage_token"`
	VenueID     string    `json:"venue_id"`
	VenueName   string    `json:"venue_name,omitempty"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	EventType   string    `json:"event_type"`
	EventDate   string    `json:"event_date"`
	GuestCount  int       `json:"guest_count"`
	TotalAmount int       `json:"total_amount"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type BookingResponse struct {
	ID              string               `json:"id"`
	VenueID         string               `json:"venue_id"`
	VenueName       string               `json:"venue_name,omitempty"`
	ClientName      string               `json:"client_name"`
	ClientEmail     string               `json:"client_email"`
	ClientPhone     string               `json:"client_phone"`
	EventType       string               `json:"event_type"`
	EventDate       string               `json:"event_date"`
	GuestCount      int                  `json:"guest_count"`
	SelectedHallID  *string              `json:"selected_hall_id,omitempty"`
	SpecialRequests *string              `json:"special_requests,omitempty"`
	TotalAmount     int                  `json:"total_amount"`
	DepositPaid     bool                 `json:"deposit_paid"`
	Status          entity.BookingStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
}

type GuestResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      *string           `json:"email,omitempty"`
	Phone      *string           `json:"phone,omitempty"`
	RSVPStatus entity.RSVPStatus `json:"rsvp_status"`
	CreatedAt  time.Time         `json:"created_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Guests []GuestResponse `json:"guests"`
}

type ProfileResponse struct {
	User       UserResponse      `json:"user"`
	Upcoming   []BookingResponse `json:"upcoming_bookings"`
	Past       []BookingResponse `json:"past_bookings"`
	TotalSpent int               `json:"total_spent"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Helper converters
func StagedBookingToResponse(staged *entity.StagedBooking, venueName string) StagedBookingResponse {
	return StagedBookingResponse{
		StageToken:  staged.Token.String(),
		VenueID:     staged.VenueID.String(),
		VenueName:   venueName,
		ClientName:  staged.ClientName,
		ClientEmail: staged.ClientEmail,
		EventType:   staged.EventType,
		EventDate:   staged.EventDate.Format("2006-01-02"),
		GuestCount:  staged.GuestCount,
		TotalAmount: staged.TotalAmount,
		ExpiresAt:   staged.ExpiresAt,
	}
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              booking.ID.String(),
		VenueID:         booking.VenueID.String(),
		ClientName:      booking.ClientName,
		ClientEmail:     booking.ClientEmail,
		ClientPhone:     booking.ClientPhone,
		EventType:       booking.EventType,
		EventDate:       booking.EventDate.Format("2006-01-02"),
		GuestCount:      booking.GuestCount,
		SpecialRequests: booking.SpecialRequests,
		TotalAmount:     booking.TotalAmount,
		DepositPaid:     booking.DepositPaid,
		Status:          booking.Status,
		CreatedAt:       booking.CreatedAt,
	}
	if booking.SelectedHallID != nil {
		hallID := booking.SelectedHallID.String()
		resp.SelectedHallID = &hallID
	}
	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, BookingToResponse(booking))
	}
	return result
}

func GuestToResponse(guest *entity.Guest) GuestResponse {
	return GuestResponse{
		ID:         guest.ID.String(),
		Name:       guest.Name,
		Email:      guest.Email,
		Phone:      guest.Phone,
		RSVPStatus: guest.RSVPStatus,
		CreatedAt:  guest.CreatedAt,
	}
}

func BookingToDetailResponse(booking *entity.Booking, venueName string, guests []*entity.Guest) BookingDetailResponse {
	detail := BookingDetailResponse{
		BookingResponse: BookingToResponse(booking),
		Guests:          make([]GuestResponse, 0, len(guests)),
	}
	detail.VenueName = venueName
	for _, guest := range guests {
		detail.Guests = append(detail.Guests, GuestToResponse(guest))
	}
	return detail
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}
