package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

// ImageService manages the single local image slot.
type ImageService interface {
	// Save replaces the slot with body, keeping originalName's extension.
	Save(ctx context.Context, originalName string, body io.Reader) error
	// Open returns the slot content, or domain.ErrImageNotFound.
	Open(ctx context.Context) (io.ReadCloser, int64, string, error)
}

type imageService struct {
	slot   port.ImageSlot
	logger *zap.Logger
}

// NewImageService creates a new ImageService.
func NewImageService(slot port.ImageSlot, logger *zap.Logger) ImageService {
	return &imageService{slot: slot, logger: logger}
}

func (s *imageService) Save(ctx context.Context, originalName string, body io.Reader) error {
	ext := filepath.Ext(originalName)
	if err := s.slot.Save(ctx, ext, body); err != nil {
		s.logger.Error("imageService.Save: writing slot failed",
			zap.String("file", originalName), zap.Error(err))
		return fmt.Errorf("saving image: %w", err)
	}
	s.logger.Info("imageService.Save: slot replaced", zap.String("file", originalName))
	return nil
}

func (s *imageService) Open(ctx context.Context) (io.ReadCloser, int64, string, error) {
	rc, size, contentType, err := s.slot.Open(ctx)
	if err != nil && !errors.Is(err, domain.ErrImageNotFound) {
		s.logger.Error("imageService.Open: reading slot failed", zap.Error(err))
	}
	return rc, size, contentType, err
}
