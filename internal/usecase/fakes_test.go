package usecase

import (
	"context"
	"sort"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. Repository.InTx falls through to the callback
// when no database handle is set, so the service transaction paths run
// against these directly.

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:         &fakeUserRepo{},
		Venue:        &fakeVenueRepo{},
		Hall:         &fakeHallRepo{},
		MenuItem:     &fakeMenuItemRepo{},
		Booking:      &fakeBookingRepo{},
		Guest:        &fakeGuestRepo{},
		Feedback:     &fakeFeedbackRepo{},
		Invitation:   &fakeInvitationRepo{},
		InvitedGuest: &fakeInvitedGuestRepo{},
		Staging:      &fakeStagingRepo{},
	}
}

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmailAndPhone(ctx context.Context, email, phone string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			user.UpdatedAt = time.Now()
			f.users[i] = user
			return nil
		}
	}
	return nil
}

type fakeVenueRepo struct {
	venues []*entity.Venue
}

func (f *fakeVenueRepo) FindAll(ctx context.Context, filter repository.VenueFilter) ([]*entity.Venue, error) {
	return f.venues, nil
}

func (f *fakeVenueRepo) FindFeatured(ctx context.Context, limit int) ([]*entity.Venue, error) {
	if len(f.venues) > limit {
		return f.venues[:limit], nil
	}
	return f.venues, nil
}

func (f *fakeVenueRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	for _, v := range f.venues {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

type fakeHallRepo struct {
	halls []*entity.Hall
}

func (f *fakeHallRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	for _, h := range f.halls {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, nil
}

func (f *fakeHallRepo) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Hall, error) {
	var halls []*entity.Hall
	for _, h := range f.halls {
		if h.VenueID == venueID {
			halls = append(halls, h)
		}
	}
	return halls, nil
}

type fakeMenuItemRepo struct {
	items []*entity.MenuItem
}

func (f *fakeMenuItemRepo) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.MenuItem, error) {
	var items []*entity.MenuItem
	for _, item := range f.items {
		if item.VenueID == venueID {
			items = append(items, item)
		}
	}
	return items, nil
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID != nil && *b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (f *fakeBookingRepo) FindUpcomingByEmail(ctx context.Context, email string) (*entity.Booking, error) {
	today := time.Now().Truncate(24 * time.Hour)
	var candidates []*entity.Booking
	for _, b := range f.bookings {
		if b.ClientEmail == email && !b.EventDate.Before(today) {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].EventDate.Equal(candidates[j].EventDate) {
			return candidates[i].EventDate.Before(candidates[j].EventDate)
		}
		return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
	})
	return candidates[0], nil
}

func (f *fakeBookingRepo) FindLatestByEmail(ctx context.Context, email string) (*entity.Booking, error) {
	var latest *entity.Booking
	for _, b := range f.bookings {
		if b.ClientEmail != email {
			continue
		}
		if latest == nil || b.CreatedAt.After(latest.CreatedAt) {
			latest = b
		}
	}
	return latest, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	for i, b := range f.bookings {
		if b.ID == booking.ID {
			booking.UpdatedAt = time.Now()
			f.bookings[i] = booking
			return nil
		}
	}
	return nil
}

type fakeGuestRepo struct {
	guests []*entity.Guest
}

func (f *fakeGuestRepo) Create(ctx context.Context, guest *entity.Guest) error {
	guest.CreatedAt = time.Now()
	f.guests = append(f.guests, guest)
	return nil
}

func (f *fakeGuestRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Guest, error) {
	var guests []*entity.Guest
	for _, g := range f.guests {
		if g.BookingID == bookingID {
			guests = append(guests, g)
		}
	}
	return guests, nil
}

type fakeFeedbackRepo struct {
	feedback []*entity.Feedback
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedback.CreatedAt = time.Now()
	f.feedback = append(f.feedback, feedback)
	return nil
}

type fakeInvitationRepo struct {
	invitations []*entity.Invitation
}

func (f *fakeInvitationRepo) Create(ctx context.Context, invitation *entity.Invitation) error {
	invitation.CreatedAt = time.Now()
	invitation.UpdatedAt = invitation.CreatedAt
	f.invitations = append(f.invitations, invitation)
	return nil
}

func (f *fakeInvitationRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Invitation, error) {
	for _, inv := range f.invitations {
		if inv.BookingID == bookingID {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvitationRepo) FindByToken(ctx context.Context, token string) (*entity.Invitation, error) {
	for _, inv := range f.invitations {
		if inv.UniqueToken == token {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvitationRepo) Update(ctx context.Context, invitation *entity.Invitation) error {
	for i, inv := range f.invitations {
		if inv.ID == invitation.ID {
			invitation.UpdatedAt = time.Now()
			f.invitations[i] = invitation
			return nil
		}
	}
	return nil
}

type fakeInvitedGuestRepo struct {
	guests []*entity.InvitedGuest
}

func (f *fakeInvitedGuestRepo) Create(ctx context.Context, guest *entity.InvitedGuest) error {
	guest.CreatedAt = time.Now()
	f.guests = append(f.guests, guest)
	return nil
}

func (f *fakeInvitedGuestRepo) Update(ctx context.Context, guest *entity.InvitedGuest) error {
	for i, g := range f.guests {
		if g.ID == guest.ID {
			f.guests[i] = guest
			return nil
		}
	}
	return nil
}

func (f *fakeInvitedGuestRepo) FindByInvitationID(ctx context.Context, invitationID uuid.UUID) ([]*entity.InvitedGuest, error) {
	var guests []*entity.InvitedGuest
	for _, g := range f.guests {
		if g.InvitationID == invitationID {
			guests = append(guests, g)
		}
	}
	return guests, nil
}

func (f *fakeInvitedGuestRepo) FindByInvitationAndEmail(ctx context.Context, invitationID uuid.UUID, email string) (*entity.InvitedGuest, error) {
	for _, g := range f.guests {
		if g.InvitationID == invitationID && g.Email != nil && *g.Email == email {
			return g, nil
		}
	}
	return nil, nil
}

type fakeStagingRepo struct {
	staged []*entity.StagedBooking
}

func (f *fakeStagingRepo) Create(ctx context.Context, staged *entity.StagedBooking) error {
	staged.CreatedAt = time.Now()
	f.staged = append(f.staged, staged)
	return nil
}

func (f *fakeStagingRepo) FindValidByToken(ctx context.Context, token uuid.UUID) (*entity.StagedBooking, error) {
	for _, s := range f.staged {
		if s.Token == token && s.ExpiresAt.After(time.Now()) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStagingRepo) Delete(ctx context.Context, token uuid.UUID) error {
	for i, s := range f.staged {
		if s.Token == token {
			f.staged = append(f.staged[:i], f.staged[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStagingRepo) CleanExpired(ctx context.Context) error {
	kept := f.staged[:0]
	for _, s := range f.staged {
		if s.ExpiresAt.After(time.Now()) {
			kept = append(kept, s)
		}
	}
	f.staged = kept
	return nil
}
