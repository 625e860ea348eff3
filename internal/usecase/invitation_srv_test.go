package usecase

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedBooking(repo *repository.Repository) *entity.Booking {
	venue := seedVenue(repo, 12000)
	booking := &entity.Booking{
		VenueID:     venue.ID,
		ClientName:  "Aigerim",
		ClientEmail: "aigerim@example.com",
		ClientPhone: "+77011234567",
		EventType:   "wedding",
		EventDate:   time.Now().AddDate(0, 1, 0),
		GuestCount:  50,
		TotalAmount: 600000,
		DepositPaid: true,
		Status:      entity.BookingStatusConfirmed,
	}
	booking.ID = utils.GenerateUUID()
	bookings := repo.Booking.(*fakeBookingRepo)
	bookings.bookings = append(bookings.bookings, booking)
	return booking
}

func invitationRequest() *request.InvitationRequest {
	return &request.InvitationRequest{
		Title:     "Aigerim & Yerlan",
		Message:   "Join us to celebrate our wedding",
		EventTime: "18:00",
	}
}

func TestUpsertInvitationCreatesWithToken(t *testing.T) {
	repo := newFakeRepository()
	booking := seedBooking(repo)
	service := NewInvitationService(repo, zap.NewNop())

	invitation, err := service.UpsertInvitation(context.Background(), booking.ID.String(), invitationRequest())
	require.NoError(t, err)

	assert.Equal(t, booking.ID.String(), invitation.BookingID)
	assert.NotEmpty(t, invitation.UniqueToken)
	assert.GreaterOrEqual(t, len(invitation.UniqueToken), 32)
}

func TestUpsertInvitationKeepsTokenOnUpdate(t *testing.T) {
	repo := newFakeRepository()
	booking := seedBooking(repo)
	service := NewInvitationService(repo, zap.NewNop())
	ctx := context.Background()

	first, err := service.UpsertInvitation(ctx, booking.ID.String(), invitationRequest())
	require.NoError(t, err)

	updated := invitationRequest()
	updated.Title = "New Title"
	second, err := service.UpsertInvitation(ctx, booking.ID.String(), updated)
	require.NoError(t, err)

	// Links already shared keep working.
	assert.Equal(t, first.UniqueToken, second.UniqueToken)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "New Title", second.Title)
	assert.Len(t, repo.Invitation.(*fakeInvitationRepo).invitations, 1)
}

func TestUpsertInvitationUnknownBooking(t *testing.T) {
	repo := newFakeRepository()
	service := NewInvitationService(repo, zap.NewNop())

	_, err := service.UpsertInvitation(context.Background(), utils.GenerateUUID().String(), invitationRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSubmitRSVPCountsCompanions(t *testing.T) {
	repo := newFakeRepository()
	booking := seedBooking(repo)
	service := NewInvitationService(repo, zap.NewNop())
	ctx := context.Background()

	invitation, err := service.UpsertInvitation(ctx, booking.ID.String(), invitationRequest())
	require.NoError(t, err)

	result, err := service.SubmitRSVP(ctx, invitation.UniqueToken, &request.SubmitRSVPRequest{
		Name:       "Dana",
		RSVPStatus: "attending",
		PlusOne:    2,
	})
	require.NoError(t, err)

	// One attending response with two companions is a headcount of three.
	assert.Equal(t, 1, result.Stats.Attending)
	assert.Equal(t, 3, result.Stats.TotalAttending)
}

func TestSubmitRSVPDedupesByEmail(t *testing.T) {
	repo := newFakeRepository()
	booking := seedBooking(repo)
	service := NewInvitationService(repo, zap.NewNop())
	ctx := context.Background()

	invitation, err := service.UpsertInvitation(ctx, booking.ID.String(), invitationRequest())
	require.NoError(t, err)

	email := "dana@example.com"
	_, err = service.SubmitRSVP(ctx, invitation.UniqueToken, &request.SubmitRSVPRequest{
		Name:       "Dana",
		Email:      &email,
		RSVPStatus: "attending",
		PlusOne:    1,
	})
	require.NoError(t, err)

	result, err := service.SubmitRSVP(ctx, invitation.UniqueToken, &request.SubmitRSVPRequest{
		Name:       "Dana",
		Email:      &email,
		RSVPStatus: "not_attending",
		PlusOne:    0,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.TotalInvited)
	assert.Equal(t, 0, result.Stats.Attending)
	assert.Equal(t, 1, result.Stats.NotAttending)
	assert.Equal(t, 0, result.Stats.TotalAttending)
}

func TestDashboardAggregates(t *testing.T) {
	repo := newFakeRepository()
	booking := seedBooking(repo)
	service := NewInvitationService(repo, zap.NewNop())
	ctx := context.Background()

	invitation, err := service.UpsertInvitation(ctx, booking.ID.String(), invitationRequest())
	require.NoError(t, err)

	submit := func(name, status string, plusOne int) {
		t.Helper()
		_, err := service.SubmitRSVP(ctx, invitation.UniqueToken, &request.SubmitRSVPRequest{
			Name:       name,
			RSVPStatus: status,
			PlusOne:    plusOne,
		})
		require.NoError(t, err)
	}

	submit("Dana", "attending", 1)
	submit("Yerlan", "attending", 1)
	submit("Saule", "not_attending", 0)

	// One guest was added directly without responding yet.
	pending := &entity.InvitedGuest{
		InvitationID: mustParse(t, invitation.ID),
		Name:         "Timur",
		RSVPStatus:   entity.RSVPStatusPending,
	}
	pending.ID = utils.GenerateUUID()
	guests := repo.InvitedGuest.(*fakeInvitedGuestRepo)
	guests.guests = append(guests.guests, pending)

	dashboard, err := service.GetInvitationDashboard(ctx, invitation.UniqueToken)
	require.NoError(t, err)

	assert.Equal(t, 4, dashboard.Stats.TotalInvited)
	assert.Equal(t, 2, dashboard.Stats.Attending)
	assert.Equal(t, 1, dashboard.Stats.NotAttending)
	assert.Equal(t, 1, dashboard.Stats.Pending)
	assert.Equal(t, 4, dashboard.Stats.TotalAttending)
}

func TestPublicInvitationHidesGuestList(t *testing.T) {
	repo := newFakeRepository()
	booking := seedBooking(repo)
	service := NewInvitationService(repo, zap.NewNop())
	ctx := context.Background()

	invitation, err := service.UpsertInvitation(ctx, booking.ID.String(), invitationRequest())
	require.NoError(t, err)

	public, err := service.GetPublicInvitation(ctx, invitation.UniqueToken)
	require.NoError(t, err)

	assert.Equal(t, "Aigerim & Yerlan", public.Title)
	assert.Equal(t, "Grand Almaty Hotel", public.VenueName)
	assert.Equal(t, booking.EventDate.Format("2006-01-02"), public.EventDate)
}

func TestInvitationUnknownToken(t *testing.T) {
	repo := newFakeRepository()
	service := NewInvitationService(repo, zap.NewNop())

	_, err := service.GetInvitationDashboard(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func mustParse(t *testing.T, id string) uuid.UUID {
	t.Helper()
	parsed, err := utils.ParseUUID(id)
	require.NoError(t, err)
	return parsed
}
