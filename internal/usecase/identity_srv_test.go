package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIdentityResolveCreatesUser(t *testing.T) {
	repo := newFakeRepository()
	service := NewIdentityService(zap.NewNop())

	user, err := service.Resolve(context.Background(), repo, "Aigerim", "aigerim@example.com", "+77011234567")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "Aigerim", user.Name)
	assert.Equal(t, "aigerim@example.com", user.Email)
	assert.Equal(t, "+77011234567", user.Phone)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", user.ID.String())
}

func TestIdentityResolveLastWriteWins(t *testing.T) {
	repo := newFakeRepository()
	service := NewIdentityService(zap.NewNop())
	ctx := context.Background()

	first, err := service.Resolve(ctx, repo, "Aigerim", "aigerim@example.com", "+77011234567")
	require.NoError(t, err)

	second, err := service.Resolve(ctx, repo, "Aigerim S.", "aigerim@example.com", "+77019999999")
	require.NoError(t, err)

	// Same row, updated contact details.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Aigerim S.", second.Name)
	assert.Equal(t, "+77019999999", second.Phone)

	users := repo.User.(*fakeUserRepo).users
	assert.Len(t, users, 1)
}
