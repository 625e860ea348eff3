package request

type StageBookingRequest struct {
	ClientName      string  `json:"client_name" validate:"required,min=2,max=100"`
	ClientEmail     string  `json:"client_email" validate:"required,email"`
	ClientPhone     string  `json:"client_phone" validate:"required,min=5,max=30"`
	EventType       string  `json:"event_type" validate:"required,min=2,max=50"`
	EventDate       string  `json:"event_date" validate:"required,datetime=2006-01-02"`
	GuestCount      int     `json:"guest_count" validate:"required,min=1,max=1000"`
	SelectedHallID  *string `json:"selected_hall_id,omitempty" validate:"omitempty,uuid4"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

type GuestRSVPRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
	RSVPStatus string  `json:"rsvp_status" validate:"required,oneof=pending attending not_attending"`
}

type AddOnRequest struct {
	ClientName  string `json:"client_name" validate:"required,min=2,max=100"`
	ClientEmail string `json:"client_email" validate:"required,email"`
	ClientPhone string `json:"client_phone" validate:"required,min=5,max=20"`
	AddOnID     string `json:"add_on_id" validate:"required"`
}
