package repository

import (
	"context"
	"fmt"

	"venue-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Venue        VenueRepository
	Hall         HallRepository
	MenuItem     MenuItemRepository
	Booking      BookingRepository
	Guest        GuestRepository
	Feedback     FeedbackRepository
	Invitation   InvitationRepository
	InvitedGuest InvitedGuestRepository
	Staging      StagingRepository

	db  database.PgxIface
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	r := newRepositorySet(db, log)
	r.db = db
	return r
}

// newRepositorySet builds repositories over any querier, so the same set of
// implementations serves both pooled and transaction-bound access.
func newRepositorySet(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(q, log),
		Venue:        NewVenueRepository(q, log),
		Hall:         NewHallRepository(q, log),
		MenuItem:     NewMenuItemRepository(q, log),
		Booking:      NewBookingRepository(q, log),
		Guest:        NewGuestRepository(q, log),
		Feedback:     NewFeedbackRepository(q, log),
		Invitation:   NewInvitationRepository(q, log),
		InvitedGuest: NewInvitedGuestRepository(q, log),
		Staging:      NewStagingRepository(q, log),
		log:          log,
	}
}

// InTx runs fn against a repository set bound to a single transaction.
// The transaction commits only when fn returns nil; any error rolls every
// write back. A Repository assembled without a database handle runs fn
// against itself.
func (r *Repository) InTx(ctx context.Context, fn func(*Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(newRepositorySet(tx, r.log)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			r.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	return tx.Commit(ctx)
}
