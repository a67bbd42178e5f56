package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aquawatch/aquawatch/internal/record"
)

// MemoryStore is an in-memory implementation of Store.
// This is intended for testing. Production uses MongoStore or FileStore.
type MemoryStore[T any, PT interface {
	*T
	Entity
}] struct {
	mu   sync.RWMutex
	recs []T
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore[T any, PT interface {
	*T
	Entity
}]() *MemoryStore[T, PT] {
	return &MemoryStore[T, PT]{}
}

// List returns a copy of the collection, newest inserted first.
func (s *MemoryStore[T, PT]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.recs))
	copy(out, s.recs)
	return out, nil
}

// Insert assigns a UUID id and prepends rec.
func (s *MemoryStore[T, PT]) Insert(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	PT(&rec).SetID(uuid.NewString())
	s.recs = append([]T{rec}, s.recs...)
	return rec, nil
}

// UpdateStatus mutates only status and updatedAt on the matching record.
func (s *MemoryStore[T, PT]) UpdateStatus(_ context.Context, id string, status record.Status) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recs {
		if PT(&s.recs[i]).GetID() == id {
			PT(&s.recs[i]).SetStatus(status, time.Now().UTC())
			return s.recs[i], nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Delete removes the matching record.
func (s *MemoryStore[T, PT]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recs {
		if PT(&s.recs[i]).GetID() == id {
			s.recs = append(s.recs[:i], s.recs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Ping always succeeds.
func (s *MemoryStore[T, PT]) Ping(_ context.Context) error { return nil }

// Ensure MemoryStore implements Store.
var _ ReportStore = (*MemoryStore[record.Report, *record.Report])(nil)
