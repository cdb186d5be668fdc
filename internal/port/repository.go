package port

import (
	"context"

	"cidgate/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	// Upsert inserts the user or overwrites the email of the existing record
	// with the same UID.
	Upsert(ctx context.Context, user *domain.User) error
}

// UploadRecordRepository defines the contract for upload record persistence.
type UploadRecordRepository interface {
	Create(ctx context.Context, record *domain.UploadRecord) error
	// SearchByEmail returns every record whose email contains query,
	// compared case-insensitively. The query is matched literally.
	SearchByEmail(ctx context.Context, query string) ([]domain.UploadRecord, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
