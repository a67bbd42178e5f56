package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aquawatch/aquawatch/internal/record"
)

// FileStore is a file-backed implementation of Store. The whole collection
// lives in one pretty-printed JSON array; every mutation is a whole-file
// read-modify-write with an atomic replace. New records are prepended, so
// insertion position preserves newest-first ordering without a sort.
//
// A per-store mutex serializes all access within the process.
type FileStore[T any, PT interface {
	*T
	Entity
}] struct {
	mu   sync.Mutex
	dir  string
	path string
}

// NewFileStore creates a FileStore for the named collection under dir.
// The directory is created lazily on first access, never at construction.
func NewFileStore[T any, PT interface {
	*T
	Entity
}](dir, collection string) *FileStore[T, PT] {
	return &FileStore[T, PT]{
		dir:  dir,
		path: filepath.Join(dir, collection+".json"),
	}
}

// List returns the full collection in stored (newest-first) order.
func (s *FileStore[T, PT]) List(_ context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Insert assigns a UUID id and prepends rec to the collection file.
func (s *FileStore[T, PT]) Insert(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	recs, err := s.load()
	if err != nil {
		return zero, err
	}

	PT(&rec).SetID(uuid.NewString())
	recs = append([]T{rec}, recs...)

	if err := s.save(recs); err != nil {
		return zero, err
	}
	return rec, nil
}

// UpdateStatus rewrites the file with only status and updatedAt changed on
// the matching record.
func (s *FileStore[T, PT]) UpdateStatus(_ context.Context, id string, status record.Status) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	recs, err := s.load()
	if err != nil {
		return zero, err
	}

	for i := range recs {
		if PT(&recs[i]).GetID() != id {
			continue
		}
		PT(&recs[i]).SetStatus(status, time.Now().UTC())
		if err := s.save(recs); err != nil {
			return zero, err
		}
		return recs[i], nil
	}
	return zero, ErrNotFound
}

// Delete rewrites the file without the matching record.
func (s *FileStore[T, PT]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load()
	if err != nil {
		return err
	}

	kept := recs[:0]
	found := false
	for i := range recs {
		if PT(&recs[i]).GetID() == id {
			found = true
			continue
		}
		kept = append(kept, recs[i])
	}
	if !found {
		return ErrNotFound
	}
	return s.save(kept)
}

// Ping verifies the data directory is accessible, creating it if absent.
func (s *FileStore[T, PT]) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureDir()
}

// load deserializes the whole collection file. A missing file is an empty
// collection, not an error.
func (s *FileStore[T, PT]) load() ([]T, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return recs, nil
}

// save re-serializes the whole collection and replaces the file atomically
// via a temp file and rename, so readers never observe a partial write.
func (s *FileStore[T, PT]) save(recs []T) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore[T, PT]) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", s.dir, err)
	}
	return nil
}

// Ensure FileStore implements Store.
var _ CoordinateStore = (*FileStore[record.Coordinate, *record.Coordinate])(nil)
