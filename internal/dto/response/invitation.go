package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type InvitationResponse struct {
	ID             string    `json:"id"`
	BookingID      string    `json:"booking_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	EventTime      string    `json:"event_time"`
	DressCode      *string   `json:"dress_code,omitempty"`
	AdditionalInfo *string   `json:"additional_info,omitempty"`
	UniqueToken    string    `json:"unique_token"`
	SharePath      string    `json:"share_path"`
	CreatedAt      time.Time `json:"created_at"`
}

type InvitedGuestResponse struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Email               *string           `json:"email,omitempty"`
	Phone               *string           `json:"phone,omitempty"`
	PlusOne             int               `json:"plus_one"`
	RSVPStatus          entity.RSVPStatus `json:"rsvp_status"`
	DietaryRestrictions *string           `json:"dietary_restrictions,omitempty"`
	MessageToHost       *string           `json:"message_to_host,omitempty"`
	RespondedAt         *time.Time        `json:"responded_at,omitempty"`
}

// RSVPStats aggregates guest responses for an invitation.
type RSVPStats struct {
	TotalInvited   int `json:"total_invited"`
	Attending      int `json:"attending"`
	NotAttending   int `json:"not_attending"`
	Pending        int `json:"pending"`
	TotalAttending int `json:"total_attending"`
}

// InvitationDashboardResponse is the owner's view: invitation content,
// the booked event, every guest response, and the running totals.
type InvitationDashboardResponse struct {
	Invitation InvitationResponse     `json:"invitation"`
	Booking    BookingResponse        `json:"booking"`
	Guests     []InvitedGuestResponse `json:"guests"`
	Stats      RSVPStats              `json:"stats"`
}

// RSVPSubmissionResponse echoes the recorded response together with the
// refreshed totals.
type RSVPSubmissionResponse struct {
	Guest InvitedGuestResponse `json:"guest"`
	Stats RSVPStats            `json:"stats"`
}

// PublicInvitationResponse is what an invited guest sees when opening
// the shared link. It never exposes other guests or booking internals.
type PublicInvitationResponse struct {
	Title          string  `json:"title"`
	Message        string  `json:"message"`
	EventTime      string  `json:"event_time"`
	EventDate      string  `json:"event_date"`
	VenueName      string  `json:"venue_name"`
	VenueAddress   string  `json:"venue_address"`
	DressCode      *string `json:"dress_code,omitempty"`
	AdditionalInfo *string `json:"additional_info,omitempty"`
}

// Helper converters
func InvitationToResponse(invitation *entity.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:             invitation.ID.String(),
		BookingID:      invitation.BookingID.String(),
		Title:          invitation.Title,
		Message:        invitation.Message,
		EventTime:      invitation.EventTime,
		DressCode:      invitation.DressCode,
		AdditionalInfo: invitation.AdditionalInfo,
		UniqueToken:    invitation.UniqueToken,
		SharePath:      "/api/rsvp/" + invitation.UniqueToken,
		CreatedAt:      invitation.CreatedAt,
	}
}

func InvitedGuestToResponse(guest *entity.InvitedGuest) InvitedGuestResponse {
	return InvitedGuestResponse{
		ID:                  guest.ID.String(),
		Name:                guest.Name,
		Email:               guest.Email,
		Phone:               guest.Phone,
		PlusOne:             guest.PlusOne,
		RSVPStatus:          guest.RSVPStatus,
		DietaryRestrictions: guest.DietaryRestrictions,
		MessageToHost:       guest.MessageToHost,
		RespondedAt:         guest.RespondedAt,
	}
}

func InvitedGuestsToResponse(guests []*entity.InvitedGuest) []InvitedGuestResponse {
	result := make([]InvitedGuestResponse, 0, len(guests))
	for _, guest := range guests {
		result = append(result, InvitedGuestToResponse(guest))
	}
	return result
}
