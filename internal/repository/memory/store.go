// Package memory is an in-process metadata store for development and tests.
// Data does not survive a restart.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

// Store holds users and upload records in memory.
type Store struct {
	mu      sync.RWMutex
	users   map[string]domain.User
	records []domain.UploadRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{users: make(map[string]domain.User)}
}

// Users returns the store as a UserRepository.
func (s *Store) Users() port.UserRepository { return (*userRepo)(s) }

// UploadRecords returns the store as an UploadRecordRepository.
func (s *Store) UploadRecords() port.UploadRecordRepository { return (*uploadRecordRepo)(s) }

func (s *Store) Ping(context.Context) error { return nil }

// User returns the user stored under uid.
func (s *Store) User(uid string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[uid]
	return u, ok
}

// UserCount returns the number of stored users.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// UploadRecordCount returns the number of stored upload records.
func (s *Store) UploadRecordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

type userRepo Store

func (r *userRepo) Upsert(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.UpdatedAt = time.Now().UTC()
	r.users[user.UID] = *user
	return nil
}

type uploadRecordRepo Store

func (r *uploadRecordRepo) Create(_ context.Context, record *domain.UploadRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.CreatedAt = time.Now().UTC()
	r.records = append(r.records, *record)
	return nil
}

func (r *uploadRecordRepo) SearchByEmail(_ context.Context, query string) ([]domain.UploadRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := []domain.UploadRecord{}
	for _, rec := range r.records {
		if strings.Contains(strings.ToLower(rec.Email), q) {
			out = append(out, rec)
		}
	}
	return out, nil
}
