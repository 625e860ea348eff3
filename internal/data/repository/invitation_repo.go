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

type InvitationRepository interface {
	Create(ctx context.Context, invitation *entity.Invitation) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Invitation, error)
	FindByToken(ctx context.Context, token string) (*entity.Invitation, error)
	Update(ctx context.Context, invitation *entity.Invitation) error
}

type invitationRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewInvitationRepository(db database.Querier, log *zap.Logger) InvitationRepository {
	return &invitationRepository{
		db:  db,
		log: log.With(zap.String("repository", "invitation")),
	}
}

const invitationColumns = `id, booking_id, title, message, event_time, dress_code,
	additional_info, unique_token, created_at, updated_at`

func (r *invitationRepository) Create(ctx context.Context, invitation *entity.Invitation) error {
	query := `
		INSERT INTO invitations (id, booking_id, title, message, event_time, dress_code,
			additional_info, unique_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		invitation.ID,
		invitation.BookingID,
		invitation.Title,
		invitation.Message,
		invitation.EventTime,
		invitation.DressCode,
		invitation.AdditionalInfo,
		invitation.UniqueToken,
	).Scan(&invitation.CreatedAt, &invitation.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create invitation",
			zap.Error(err),
			zap.String("booking_id", invitation.BookingID.String()),
		)
		return fmt.Errorf("create invitation: %w", err)
	}

	return nil
}

func (r *invitationRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE booking_id = $1`

	invitation, err := r.scanInvitation(r.db.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("Failed to find invitation by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find invitation by booking ID %s: %w", bookingID.String(), err)
	}

	return invitation, nil
}

func (r *invitationRepository) FindByToken(ctx context.Context, token string) (*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE unique_token = $1`

	invitation, err := r.scanInvitation(r.db.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("Failed to find invitation by token", zap.Error(err))
		return nil, fmt.Errorf("find invitation by token: %w", err)
	}

	return invitation, nil
}

func (r *invitationRepository) Update(ctx context.Context, invitation *entity.Invitation) error {
	query := `
		UPDATE invitations
		SET title = $2, message = $3, event_time = $4, dress_code = $5,
			additional_info = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		invitation.ID,
		invitation.Title,
		invitation.Message,
		invitation.EventTime,
		invitation.DressCode,
		invitation.AdditionalInfo,
	).Scan(&invitation.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update invitation",
			zap.Error(err),
			zap.String("invitation_id", invitation.ID.String()),
		)
		return fmt.Errorf("update invitation %s: %w", invitation.ID.String(), err)
	}

	return nil
}

func (r *invitationRepository) scanInvitation(row pgx.Row) (*entity.Invitation, error) {
	var invitation entity.Invitation
	err := row.Scan(
		&invitation.ID,
		&invitation.BookingID,
		&invitation.Title,
		&invitation.Message,
		&invitation.EventTime,
		&invitation.DressCode,
		&invitation.AdditionalInfo,
		&invitation.UniqueToken,
		&invitation.CreatedAt,
		&invitation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}
