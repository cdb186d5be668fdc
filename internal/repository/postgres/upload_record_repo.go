package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

type uploadRecordRepo struct {
	db *sqlx.DB
}

// NewUploadRecordRepo creates a new PostgreSQL-backed UploadRecordRepository.
func NewUploadRecordRepo(db *DB) port.UploadRecordRepository {
	return &uploadRecordRepo{db: db.DB}
}

func (r *uploadRecordRepo) Create(ctx context.Context, record *domain.UploadRecord) error {
	record.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, insertUploadRecordQuery,
		record.Email, record.CID, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("uploadRecordRepo.Create: %w", err)
	}
	return nil
}

func (r *uploadRecordRepo) SearchByEmail(ctx context.Context, query string) ([]domain.UploadRecord, error) {
	records := []domain.UploadRecord{}
	err := r.db.SelectContext(ctx, &records, searchUploadRecordsQuery, query)
	if err != nil {
		return nil, fmt.Errorf("uploadRecordRepo.SearchByEmail: %w", err)
	}
	return records, nil
}
