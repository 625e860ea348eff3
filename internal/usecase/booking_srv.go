package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/internal/roster"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddOnCategory names a roster-backed add-on type and the CSV file that
// backs it.
type AddOnCategory struct {
	Label string
	File  string
}

var (
	AddOnHost     = AddOnCategory{Label: "Host", File: "hosts.csv"}
	AddOnMusician = AddOnCategory{Label: "Musician", File: "musicians.csv"}
)

type BookingService interface {
	StageBooking(ctx context.Context, venueID string, req *request.StageBookingRequest) (*response.StagedBookingResponse, error)
	GetStagedBooking(ctx context.Context, token string) (*response.StagedBookingResponse, error)
	ConfirmPayment(ctx context.Context, req *request.ConfirmPaymentRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	SubmitGuestRSVP(ctx context.Context, bookingID string, req *request.GuestRSVPRequest) (*response.GuestResponse, error)
	AttachAddOn(ctx context.Context, category AddOnCategory, addOnID string, req *request.AddOnRequest) (*response.BookingResponse, error)
	GetProfile(ctx context.Context, req *request.ProfileRequest) (*response.ProfileResponse, error)
}

type bookingService struct {
	repo       *repository.Repository
	identity   IdentityService
	loader     *roster.Loader
	stagingTTL time.Duration
	log        *zap.Logger
}

func NewBookingService(repo *repository.Repository, identity IdentityService, loader *roster.Loader, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:       repo,
		identity:   identity,
		loader:     loader,
		stagingTTL: time.Duration(config.Staging.TTLMinutes) * time.Minute,
		log:        log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) StageBooking(ctx context.Context, venueID string, req *request.StageBookingRequest) (*response.StagedBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Stage booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

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

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid event date %s: %w", req.EventDate, err)
	}

	var hallID *uuid.UUID
	if req.SelectedHallID != nil {
		parsed, err := uuid.Parse(*req.SelectedHallID)
		if err != nil {
			return nil, fmt.Errorf("invalid hall ID format %s: %w", *req.SelectedHallID, err)
		}
		hall, err := s.repo.Hall.FindByID(ctx, parsed)
		if err != nil {
			return nil, fmt.Errorf("get hall: %w", err)
		}
		if hall == nil || hall.VenueID != id {
			return nil, fmt.Errorf("hall %s not found for this venue", *req.SelectedHallID)
		}
		hallID = &parsed
	}

	// Opportunistic sweep; stale rows also stay invisible through the
	// expiry check on lookup.
	if err := s.repo.Staging.CleanExpired(ctx); err != nil {
		s.log.Warn("Failed to clean expired staged bookings", zap.Error(err))
	}

	staged := &entity.StagedBooking{
		Token:           utils.GenerateStageToken(),
		VenueID:         venue.ID,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		EventType:       req.EventType,
		EventDate:       eventDate,
		GuestCount:      req.GuestCount,
		SelectedHallID:  hallID,
		SpecialRequests: req.SpecialRequests,
		TotalAmount:     venue.PricePerPerson * req.GuestCount,
		ExpiresAt:       time.Now().Add(s.stagingTTL),
	}

	if err := s.repo.Staging.Create(ctx, staged); err != nil {
		return nil, fmt.Errorf("stage booking: %w", err)
	}

	s.log.Info("Staged booking",
		zap.String("venue_id", venue.ID.String()),
		zap.String("client_email", staged.ClientEmail),
		zap.Int("total_amount", staged.TotalAmount),
	)

	resp := response.StagedBookingToResponse(staged, venue.Name)
	return &resp, nil
}

func (s *bookingService) GetStagedBooking(ctx context.Context, token string) (*response.StagedBookingResponse, error) {
	staged, err := s.findStaged(ctx, token)
	if err != nil {
		return nil, err
	}

	venueName := ""
	if venue, err := s.repo.Venue.FindByID(ctx, staged.VenueID); err == nil && venue != nil {
		venueName = venue.Name
	}

	resp := response.StagedBookingToResponse(staged, venueName)
	return &resp, nil
}

// ConfirmPayment turns a staged booking into a confirmed one. The staged
// row is deleted in the same transaction, so a stage token is single-use.
func (s *bookingService) ConfirmPayment(ctx context.Context, req *request.ConfirmPaymentRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Confirm payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	staged, err := s.findStaged(ctx, req.StageToken)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		VenueID:         staged.VenueID,
		ClientName:      staged.ClientName,
		ClientEmail:     staged.ClientEmail,
		ClientPhone:     staged.ClientPhone,
		EventType:       staged.EventType,
		EventDate:       staged.EventDate,
		GuestCount:      staged.GuestCount,
		SelectedHallID:  staged.SelectedHallID,
		SpecialRequests: staged.SpecialRequests,
		TotalAmount:     staged.TotalAmount,
		DepositPaid:     true,
		Status:          entity.BookingStatusConfirmed,
	}
	booking.ID = utils.GenerateUUID()

	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		user, err := s.identity.Resolve(ctx, r, staged.ClientName, staged.ClientEmail, staged.ClientPhone)
		if err != nil {
			return err
		}
		booking.UserID = &user.ID

		if err := r.Booking.Create(ctx, booking); err != nil {
			return err
		}
		return r.Staging.Delete(ctx, staged.Token)
	})
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}

	s.log.Info("Confirmed booking",
		zap.String("booking_id", booking.ID.String()),
		zap.String("client_email", booking.ClientEmail),
		zap.Int("total_amount", booking.TotalAmount),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	venueName := ""
	if venue, err := s.repo.Venue.FindByID(ctx, booking.VenueID); err == nil && venue != nil {
		venueName = venue.Name
	}

	guests, err := s.repo.Guest.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking guests: %w", err)
	}

	resp := response.BookingToDetailResponse(booking, venueName, guests)
	return &resp, nil
}

func (s *bookingService) SubmitGuestRSVP(ctx context.Context, bookingID string, req *request.GuestRSVPRequest) (*response.GuestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Guest RSVP validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	guest := &entity.Guest{
		BookingID:  booking.ID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		RSVPStatus: entity.RSVPStatus(req.RSVPStatus),
	}
	guest.ID = utils.GenerateUUID()

	if err := s.repo.Guest.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("submit guest RSVP: %w", err)
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

// AttachAddOn books a roster entry (host or musician) onto the client's
// nearest upcoming booking, falling back to their most recent one.
func (s *bookingService) AttachAddOn(ctx context.Context, category AddOnCategory, addOnID string, req *request.AddOnRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add-on validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	records, err := s.loader.Load(category.File)
	if err != nil {
		return nil, fmt.Errorf("load %s roster: %w", category.Label, err)
	}

	var record *roster.Record
	for _, r := range records {
		if r.ID == addOnID {
			record = r
			break
		}
	}
	if record == nil {
		return nil, fmt.Errorf("%s %s not found", category.Label, addOnID)
	}

	booking, err := s.repo.Booking.FindUpcomingByEmail(ctx, req.ClientEmail)
	if err != nil {
		return nil, fmt.Errorf("find upcoming booking: %w", err)
	}
	if booking == nil {
		booking, err = s.repo.Booking.FindLatestByEmail(ctx, req.ClientEmail)
		if err != nil {
			return nil, fmt.Errorf("find latest booking: %w", err)
		}
	}
	if booking == nil {
		return nil, fmt.Errorf("no venue booking found for this email")
	}

	price := record.ResolvedPrice()
	booking.AppendSpecialRequest(fmt.Sprintf("Added %s: %s (+%d KZT)", category.Label, record.Name, price))
	booking.TotalAmount += price

	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		user, err := s.identity.Resolve(ctx, r, req.ClientName, req.ClientEmail, req.ClientPhone)
		if err != nil {
			return err
		}
		booking.UserID = &user.ID
		return r.Booking.Update(ctx, booking)
	})
	if err != nil {
		return nil, fmt.Errorf("attach add-on: %w", err)
	}

	s.log.Info("Attached add-on to booking",
		zap.String("booking_id", booking.ID.String()),
		zap.String("category", category.Label),
		zap.String("add_on", record.Name),
		zap.Int("price", price),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetProfile(ctx context.Context, req *request.ProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmailAndPhone(ctx, req.Email, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("get profile user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", req.Email)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get profile bookings: %w", err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	profile := &response.ProfileResponse{
		User:     response.UserToResponse(user),
		Upcoming: []response.BookingResponse{},
		Past:     []response.BookingResponse{},
	}
	for _, booking := range bookings {
		if !booking.EventDate.Before(today) && booking.Status != entity.BookingStatusCancelled {
			profile.Upcoming = append(profile.Upcoming, response.BookingToResponse(booking))
		} else {
			profile.Past = append(profile.Past, response.BookingToResponse(booking))
		}
		// Deposits are 30% of the booking total; only paid deposits count
		// as spend.
		if booking.DepositPaid {
			profile.TotalSpent += booking.TotalAmount * 30 / 100
		}
	}

	return profile, nil
}

func (s *bookingService) findStaged(ctx context.Context, token string) (*entity.StagedBooking, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("no booking data found")
	}

	staged, err := s.repo.Staging.FindValidByToken(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("get staged booking: %w", err)
	}
	if staged == nil {
		return nil, fmt.Errorf("no booking data found")
	}

	return staged, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
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

	return booking, nil
}
