package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cidgate/internal/domain"
	"cidgate/internal/repository/memory"
	"cidgate/internal/service"
	"cidgate/mocks"
)

func TestRegistrationService_Register(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewRegistrationService(repo, zap.NewNop())

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.UID == "uid-alice" && u.Email == "alice@example.com"
	})).Return(nil).Once()

	require.NoError(t, svc.Register(context.Background(), alice))
	repo.AssertExpectations(t)
}

func TestRegistrationService_Register_Error(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewRegistrationService(repo, zap.NewNop())

	repo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("no primary"))

	err := svc.Register(context.Background(), alice)
	assert.True(t, errors.Is(err, domain.ErrRegisterFailed))
}

func TestRegistrationService_Register_Idempotent(t *testing.T) {
	store := memory.NewStore()
	svc := service.NewRegistrationService(store.Users(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, domain.Identity{UID: "u1", Email: "first@example.com"}))
	require.NoError(t, svc.Register(ctx, domain.Identity{UID: "u1", Email: "second@example.com"}))

	assert.Equal(t, 1, store.UserCount())
	u, ok := store.User("u1")
	require.True(t, ok)
	assert.Equal(t, "second@example.com", u.Email)
}
