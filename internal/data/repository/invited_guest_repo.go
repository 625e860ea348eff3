package repository

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InvitedGuestRepository interface {
	Create(ctx context.Context, guest *entity.InvitedGuest) error
	Update(ctx context.Context, guest *entity.InvitedGuest) error
	FindByInvitationID(ctx context.Context, invitationID uuid.UUID) ([]*entity.InvitedGuest, error)
	FindByInvitationAndEmail(ctx context.Context, invitationID uuid.UUID, email string) (*entity.InvitedGuest, error)
}

type invitedGuestRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewInvitedGuestRepository(db database.Querier, log *zap.Logger) InvitedGuestRepository {
	return &invitedGuestRepository{
		db:  db,
		log: log.With(zap.String("repository", "invited_guest")),
	}
}

const invitedGuestColumns = `id, invitation_id, name, email, phone, plus_one, rsvp_status,
	dietary_restrictions, message_to_host, responded_at, created_at`

func (r *invitedGuestRepository) Create(ctx context.Context, guest *entity.InvitedGuest) error {
	query := `
		INSERT INTO invited_guests (id, invitation_id, name, email, phone, plus_one, rsvp_status,
			dietary_restrictions, message_to_host, responded_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		guest.ID,
		guest.InvitationID,
		guest.Name,
		guest.Email,
		guest.Phone,
		guest.PlusOne,
		guest.RSVPStatus,
		guest.DietaryRestrictions,
		guest.MessageToHost,
		guest.RespondedAt,
	).Scan(&guest.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create invited guest",
			zap.Error(err),
			zap.String("invitation_id", guest.InvitationID.String()),
		)
		return fmt.Errorf("create invited guest: %w", err)
	}

	return nil
}

func (r *invitedGuestRepository) Update(ctx context.Context, guest *entity.InvitedGuest) error {
	query := `
		UPDATE invited_guests
		SET name = $2, phone = $3, plus_one = $4, rsvp_status = $5,
			dietary_restrictions = $6, message_to_host = $7, responded_at = $8
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query,
		guest.ID,
		guest.Name,
		guest.Phone,
		guest.PlusOne,
		guest.RSVPStatus,
		guest.DietaryRestrictions,
		guest.MessageToHost,
		guest.RespondedAt,
	)
	if err != nil {
		r.log.Error("Failed to update invited guest",
			zap.Error(err),
			zap.String("guest_id", guest.ID.String()),
		)
		return fmt.Errorf("update invited guest %s: %w", guest.ID.String(), err)
	}

	return nil
}

func (r *invitedGuestRepository) FindByInvitationID(ctx context.Context, invitationID uuid.UUID) ([]*entity.InvitedGuest, error) {
	query := `SELECT ` + invitedGuestColumns + `
		FROM invited_guests
		WHERE invitation_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, invitationID)
	if err != nil {
		r.log.Error("Failed to find invited guests by invitation ID",
			zap.Error(err),
			zap.String("invitation_id", invitationID.String()),
		)
		return nil, fmt.Errorf("find invited guests by invitation ID %s: %w", invitationID.String(), err)
	}
	defer rows.Close()

	var guests []*entity.InvitedGuest
	for rows.Next() {
		guest, err := r.scanInvitedGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invited guest row: %w", err)
		}
		guests = append(guests, guest)
	}

	return guests, nil
}

func (r *invitedGuestRepository) FindByInvitationAndEmail(ctx context.Context, invitationID uuid.UUID, email string) (*entity.InvitedGuest, error) {
	query := `SELECT ` + invitedGuestColumns + `
		FROM invited_guests
		WHERE invitation_id = $1 AND email = $2
		LIMIT 1`

	guest, err := r.scanInvitedGuest(r.db.QueryRow(ctx, query, invitationID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("Failed to find invited guest by email",
			zap.Error(err),
			zap.String("invitation_id", invitationID.String()),
		)
		return nil, fmt.Errorf("find invited guest by email: %w", err)
	}

	return guest, nil
}

func (r *invitedGuestRepository) scanInvitedGuest(row pgx.Row) (*entity.InvitedGuest, error) {
	var guest entity.InvitedGuest
	err := row.Scan(
		&guest.ID,
		&guest.InvitationID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.PlusOne,
		&guest.RSVPStatus,
		&guest.DietaryRestrictions,
		&guest.MessageToHost,
		&guest.RespondedAt,
		&guest.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &guest, nil
}
