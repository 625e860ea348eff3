package usecase

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

// IdentityService resolves client contact details into a user row. Email is
// the identity key; name and phone follow whatever was submitted last.
type IdentityService interface {
	Resolve(ctx context.Context, repo *repository.Repository, name, email, phone string) (*entity.User, error)
}

type identityService struct {
	log *zap.Logger
}

func NewIdentityService(log *zap.Logger) IdentityService {
	return &identityService{
		log: log.With(zap.String("service", "identity")),
	}
}

func (s *identityService) Resolve(ctx context.Context, repo *repository.Repository, name, email, phone string) (*entity.User, error) {
	user, err := repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolve user by email: %w", err)
	}

	if user == nil {
		user = &entity.User{
			Name:  name,
			Email: email,
			Phone: phone,
		}
		user.ID = utils.GenerateUUID()
		if err := repo.User.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		s.log.Info("Created user from booking contact", zap.String("user_id", user.ID.String()))
		return user, nil
	}

	if user.Name != name || user.Phone != phone {
		user.Name = name
		user.Phone = phone
		if err := repo.User.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("update user contact: %w", err)
		}
	}

	return user, nil
}
