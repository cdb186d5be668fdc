package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cidgate/internal/domain"
	"cidgate/internal/service"
	"cidgate/internal/storage/localfs"
	"cidgate/mocks"
)

func TestImageService_SaveUsesExtension(t *testing.T) {
	slot := new(mocks.MockImageSlot)
	svc := service.NewImageService(slot, zap.NewNop())

	slot.On("Save", mock.Anything, ".jpeg", mock.Anything).Return(nil).Once()

	require.NoError(t, svc.Save(context.Background(), "holiday.jpeg", strings.NewReader("x")))
	slot.AssertExpectations(t)
}

func TestImageService_SaveError(t *testing.T) {
	slot := new(mocks.MockImageSlot)
	svc := service.NewImageService(slot, zap.NewNop())

	slot.On("Save", mock.Anything, ".png", mock.Anything).Return(errors.New("disk full"))

	assert.Error(t, svc.Save(context.Background(), "a.png", strings.NewReader("x")))
}

func TestImageService_LastWriteWins(t *testing.T) {
	slot, err := localfs.NewSlot(afero.NewMemMapFs(), "uploads")
	require.NoError(t, err)
	svc := service.NewImageService(slot, zap.NewNop())
	ctx := context.Background()

	_, _, _, err = svc.Open(ctx)
	assert.True(t, errors.Is(err, domain.ErrImageNotFound))

	require.NoError(t, svc.Save(ctx, "a.png", strings.NewReader("file A")))
	require.NoError(t, svc.Save(ctx, "b.png", strings.NewReader("file B")))

	rc, _, _, err := svc.Open(ctx)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "file B", string(data))
}
