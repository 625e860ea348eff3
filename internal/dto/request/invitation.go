package request

type InvitationRequest struct {
	Title          string  `json:"title" validate:"required,min=2,max=150"`
	Message        string  `json:"message" validate:"required,min=2"`
	EventTime      string  `json:"event_time" validate:"required"`
	DressCode      *string `json:"dress_code,omitempty"`
	AdditionalInfo *string `json:"additional_info,omitempty"`
}

type SubmitRSVPRequest struct {
	Name                string  `json:"name" validate:"required,min=2,max=100"`
	Email               *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone               *string `json:"phone,omitempty"`
	RSVPStatus          string  `json:"rsvp_status" validate:"required,oneof=attending not_attending"`
	PlusOne             int     `json:"plus_one" validate:"min=0,max=5"`
	DietaryRestrictions *string `json:"dietary_restrictions,omitempty"`
	MessageToHost       *string `json:"message_to_host,omitempty"`
}
