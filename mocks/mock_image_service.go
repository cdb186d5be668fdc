package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockImageService is a mock implementation of service.ImageService.
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Save(ctx context.Context, originalName string, body io.Reader) error {
	args := m.Called(ctx, originalName, body)
	return args.Error(0)
}

func (m *MockImageService) Open(ctx context.Context) (io.ReadCloser, int64, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, 0, "", args.Error(3)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(int64), args.String(2), args.Error(3)
}
