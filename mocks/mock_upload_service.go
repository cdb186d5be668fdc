package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cidgate/internal/domain"
)

// MockUploadService is a mock implementation of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, identity domain.Identity, upload *domain.IncomingUpload) (*domain.UploadRecord, error) {
	args := m.Called(ctx, identity, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadRecord), args.Error(1)
}

func (m *MockUploadService) ListByEmail(ctx context.Context, query string) ([]domain.UploadRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UploadRecord), args.Error(1)
}
