package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvitationService interface {
	UpsertInvitation(ctx context.Context, bookingID string, req *request.InvitationRequest) (*response.InvitationResponse, error)
	GetInvitationDashboard(ctx context.Context, token string) (*response.InvitationDashboardResponse, error)
	GetPublicInvitation(ctx context.Context, token string) (*response.PublicInvitationResponse, error)
	SubmitRSVP(ctx context.Context, token string, req *request.SubmitRSVPRequest) (*response.RSVPSubmissionResponse, error)
}

type invitationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewInvitationService(repo *repository.Repository, log *zap.Logger) InvitationService {
	return &invitationService{
		repo: repo,
		log:  log.With(zap.String("service", "invitation")),
	}
}

// UpsertInvitation creates the invitation for a booking, or updates the
// content of the existing one. The share token never changes on update, so
// links that have already been sent out stay valid.
func (s *invitationService) UpsertInvitation(ctx context.Context, bookingID string, req *request.InvitationRequest) (*response.InvitationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Invitation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	invitation, err := s.repo.Invitation.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	if invitation == nil {
		invitation = &entity.Invitation{
			BookingID:      id,
			Title:          req.Title,
			Message:        req.Message,
			EventTime:      req.EventTime,
			DressCode:      req.DressCode,
			AdditionalInfo: req.AdditionalInfo,
			UniqueToken:    utils.GenerateInvitationToken(),
		}
		invitation.ID = utils.GenerateUUID()
		if err := s.repo.Invitation.Create(ctx, invitation); err != nil {
			return nil, fmt.Errorf("create invitation: %w", err)
		}
		s.log.Info("Created invitation",
			zap.String("invitation_id", invitation.ID.String()),
			zap.String("booking_id", bookingID),
		)
	} else {
		invitation.Title = req.Title
		invitation.Message = req.Message
		invitation.EventTime = req.EventTime
		invitation.DressCode = req.DressCode
		invitation.AdditionalInfo = req.AdditionalInfo
		if err := s.repo.Invitation.Update(ctx, invitation); err != nil {
			return nil, fmt.Errorf("update invitation: %w", err)
		}
	}

	resp := response.InvitationToResponse(invitation)
	return &resp, nil
}

func (s *invitationService) GetInvitationDashboard(ctx context.Context, token string) (*response.InvitationDashboardResponse, error) {
	invitation, err := s.findByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, invitation.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get invitation booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("invitation not found")
	}

	bookingResp := response.BookingToResponse(booking)
	if venue, err := s.repo.Venue.FindByID(ctx, booking.VenueID); err == nil && venue != nil {
		bookingResp.VenueName = venue.Name
	}

	guests, err := s.repo.InvitedGuest.FindByInvitationID(ctx, invitation.ID)
	if err != nil {
		return nil, fmt.Errorf("get invited guests: %w", err)
	}

	return &response.InvitationDashboardResponse{
		Invitation: response.InvitationToResponse(invitation),
		Booking:    bookingResp,
		Guests:     response.InvitedGuestsToResponse(guests),
		Stats:      computeRSVPStats(guests),
	}, nil
}

func (s *invitationService) GetPublicInvitation(ctx context.Context, token string) (*response.PublicInvitationResponse, error) {
	invitation, err := s.findByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, invitation.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get invitation booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("invitation not found")
	}

	resp := &response.PublicInvitationResponse{
		Title:          invitation.Title,
		Message:        invitation.Message,
		EventTime:      invitation.EventTime,
		EventDate:      booking.EventDate.Format("2006-01-02"),
		DressCode:      invitation.DressCode,
		AdditionalInfo: invitation.AdditionalInfo,
	}
	if venue, err := s.repo.Venue.FindByID(ctx, booking.VenueID); err == nil && venue != nil {
		resp.VenueName = venue.Name
		resp.VenueAddress = venue.Address
	}

	return resp, nil
}

// SubmitRSVP records a guest's response. A repeat submission with the same
// email updates the earlier response instead of adding a duplicate row;
// responses without an email always insert.
func (s *invitationService) SubmitRSVP(ctx context.Context, token string, req *request.SubmitRSVPRequest) (*response.RSVPSubmissionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("RSVP validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	invitation, err := s.findByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	// Find-then-write runs in one transaction so two submissions with the
	// same email cannot both insert.
	var guest *entity.InvitedGuest
	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		if req.Email != nil && *req.Email != "" {
			guest, err = r.InvitedGuest.FindByInvitationAndEmail(ctx, invitation.ID, *req.Email)
			if err != nil {
				return fmt.Errorf("find invited guest: %w", err)
			}
		}

		now := time.Now()
		if guest == nil {
			guest = &entity.InvitedGuest{
				InvitationID:        invitation.ID,
				Name:                req.Name,
				Email:               req.Email,
				Phone:               req.Phone,
				PlusOne:             req.PlusOne,
				RSVPStatus:          entity.RSVPStatus(req.RSVPStatus),
				DietaryRestrictions: req.DietaryRestrictions,
				MessageToHost:       req.MessageToHost,
				RespondedAt:         &now,
			}
			guest.ID = utils.GenerateUUID()
			if err := r.InvitedGuest.Create(ctx, guest); err != nil {
				return fmt.Errorf("create RSVP: %w", err)
			}
			return nil
		}

		guest.Name = req.Name
		guest.Phone = req.Phone
		guest.PlusOne = req.PlusOne
		guest.RSVPStatus = entity.RSVPStatus(req.RSVPStatus)
		guest.DietaryRestrictions = req.DietaryRestrictions
		guest.MessageToHost = req.MessageToHost
		guest.RespondedAt = &now
		if err := r.InvitedGuest.Update(ctx, guest); err != nil {
			return fmt.Errorf("update RSVP: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	guests, err := s.repo.InvitedGuest.FindByInvitationID(ctx, invitation.ID)
	if err != nil {
		return nil, fmt.Errorf("get invited guests: %w", err)
	}

	s.log.Info("Recorded RSVP",
		zap.String("invitation_id", invitation.ID.String()),
		zap.String("rsvp_status", req.RSVPStatus),
		zap.Int("plus_one", req.PlusOne),
	)

	return &response.RSVPSubmissionResponse{
		Guest: response.InvitedGuestToResponse(guest),
		Stats: computeRSVPStats(guests),
	}, nil
}

func (s *invitationService) findByToken(ctx context.Context, token string) (*entity.Invitation, error) {
	invitation, err := s.repo.Invitation.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get invitation by token: %w", err)
	}
	if invitation == nil {
		return nil, fmt.Errorf("invitation not found")
	}
	return invitation, nil
}

// computeRSVPStats derives the aggregate counts from the guest list. A
// guest who is attending counts as themselves plus their companions.
func computeRSVPStats(guests []*entity.InvitedGuest) response.RSVPStats {
	stats := response.RSVPStats{TotalInvited: len(guests)}
	for _, guest := range guests {
		switch guest.RSVPStatus {
		case entity.RSVPStatusAttending:
			stats.Attending++
			stats.TotalAttending += guest.PlusOne + 1
		case entity.RSVPStatusNotAttending:
			stats.NotAttending++
		}
	}
	stats.Pending = stats.TotalInvited - stats.Attending - stats.NotAttending
	if stats.Pending < 0 {
		stats.Pending = 0
	}
	return stats
}
