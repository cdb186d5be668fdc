package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cidgate/internal/domain"
)

// MockUploadRecordRepo is a mock implementation of port.UploadRecordRepository.
type MockUploadRecordRepo struct {
	mock.Mock
}

func (m *MockUploadRecordRepo) Create(ctx context.Context, record *domain.UploadRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockUploadRecordRepo) SearchByEmail(ctx context.Context, query string) ([]domain.UploadRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UploadRecord), args.Error(1)
}
