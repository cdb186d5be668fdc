package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cidgate/internal/domain"
)

// MockIdentityVerifier is a mock implementation of port.IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

func (m *MockIdentityVerifier) VerifyToken(ctx context.Context, token string) (*domain.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockIdentityVerifier) Provider() string {
	args := m.Called()
	return args.String(0)
}
