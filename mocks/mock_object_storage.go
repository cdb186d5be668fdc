package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"cidgate/internal/port"
)

// MockObjectStorage is a mock implementation of port.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Put(ctx context.Context, input port.PutInput) (*port.PutOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.PutOutput), args.Error(1)
}

// MockImageSlot is a mock implementation of port.ImageSlot.
type MockImageSlot struct {
	mock.Mock
}

func (m *MockImageSlot) Save(ctx context.Context, ext string, body io.Reader) error {
	args := m.Called(ctx, ext, body)
	return args.Error(0)
}

func (m *MockImageSlot) Open(ctx context.Context) (io.ReadCloser, int64, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, 0, "", args.Error(3)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(int64), args.String(2), args.Error(3)
}
