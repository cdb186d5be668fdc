package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

type userRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new PostgreSQL-backed UserRepository.
func NewUserRepo(db *DB) port.UserRepository {
	return &userRepo{db: db.DB}
}

func (r *userRepo) Upsert(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()

	if _, err := r.db.NamedExecContext(ctx, upsertUserQuery, user); err != nil {
		return fmt.Errorf("userRepo.Upsert: %w", err)
	}
	return nil
}
