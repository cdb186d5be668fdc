package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cidgate/internal/domain"
	"cidgate/internal/metrics"
	"cidgate/internal/port"
)

// UploadService forwards uploads to the object store and records the
// resulting CIDs.
type UploadService interface {
	Upload(ctx context.Context, identity domain.Identity, upload *domain.IncomingUpload) (*domain.UploadRecord, error)
	ListByEmail(ctx context.Context, query string) ([]domain.UploadRecord, error)
}

type uploadService struct {
	storage port.ObjectStorage
	records port.UploadRecordRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewUploadService creates a new UploadService. m may be nil.
func NewUploadService(
	storage port.ObjectStorage,
	records port.UploadRecordRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) UploadService {
	return &uploadService{
		storage: storage,
		records: records,
		metrics: m,
		logger:  logger,
	}
}

// Upload stores the file, then inserts one record for it. A failed insert
// leaves the stored object in place.
func (s *uploadService) Upload(ctx context.Context, identity domain.Identity, upload *domain.IncomingUpload) (*domain.UploadRecord, error) {
	log := s.logger.With(
		zap.String("uid", identity.UID),
		zap.String("file", upload.OriginalName),
		zap.Int64("size", upload.Size()),
	)
	log.Debug("uploadService.Upload: forwarding to object store",
		zap.String("content_type", upload.ContentType))

	out, err := s.storage.Put(ctx, port.PutInput{
		Name:        upload.OriginalName,
		Body:        upload.Bytes,
		ContentType: upload.ContentType,
	})
	if err != nil {
		log.Error("uploadService.Upload: object store write failed", zap.Error(err))
		s.metrics.UploadCompleted(metrics.OutcomeStoreFailed, upload.Size())
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	// A write without a CID fails the same way as a write that errored.
	if out == nil || out.CID == "" {
		log.Error("uploadService.Upload: object store returned no CID")
		s.metrics.UploadCompleted(metrics.OutcomeMissingCID, upload.Size())
		return nil, fmt.Errorf("%w: %w", domain.ErrUploadFailed, domain.ErrMissingCID)
	}

	record := &domain.UploadRecord{Email: identity.Email, CID: out.CID}
	if err := s.records.Create(ctx, record); err != nil {
		log.Error("uploadService.Upload: recording CID failed",
			zap.String("cid", out.CID), zap.String("etag", out.ETag), zap.Error(err))
		s.metrics.UploadCompleted(metrics.OutcomeRecordFailed, upload.Size())
		return nil, fmt.Errorf("creating upload record: %w", err)
	}

	s.metrics.UploadCompleted(metrics.OutcomeSuccess, upload.Size())
	log.Info("uploadService.Upload: stored",
		zap.String("cid", out.CID), zap.String("etag", out.ETag))
	return record, nil
}

func (s *uploadService) ListByEmail(ctx context.Context, query string) ([]domain.UploadRecord, error) {
	records, err := s.records.SearchByEmail(ctx, query)
	if err != nil {
		s.logger.Error("uploadService.ListByEmail: search failed",
			zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}
	if records == nil {
		records = []domain.UploadRecord{}
	}
	return records, nil
}
