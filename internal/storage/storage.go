// Package storage provides the persistence boundary for AquaWatch records.
//
// A single capability interface covers every backend: listing a collection
// newest-created-first, inserting with id assignment, mutating only the
// moderation status, and deleting by id. Route handlers and services depend
// on the interface alone, never on a concrete backend.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/aquawatch/aquawatch/internal/record"
)

// Storage errors.
var (
	ErrNotFound = errors.New("record not found")
)

// Entity is the mutable view a store needs over a record.
// Both *record.Report and *record.Coordinate satisfy it.
type Entity interface {
	GetID() string
	SetID(string)
	SetStatus(record.Status, time.Time)
}

// Store is the uniform persistence contract over one named collection.
//
// T is the record value type and PT its pointer type; the PT constraint lets
// implementations assign ids and statuses without reflection.
//
// Every mutation is immediately visible to a subsequent List: no
// implementation may cache.
type Store[T any, PT interface {
	*T
	Entity
}] interface {
	// List returns the full collection ordered newest-created-first.
	List(ctx context.Context) ([]T, error)

	// Insert persists rec, assigns its id, and returns the stored record.
	Insert(ctx context.Context, rec T) (T, error)

	// UpdateStatus sets the moderation status of the record with the given
	// id, refreshing updatedAt and preserving every other field verbatim.
	// Returns ErrNotFound if no such record exists.
	UpdateStatus(ctx context.Context, id string, status record.Status) (T, error)

	// Delete removes the record with the given id.
	// Returns ErrNotFound if no such record exists.
	Delete(ctx context.Context, id string) error

	// Ping is a lightweight connectivity probe for health checks.
	Ping(ctx context.Context) error
}

// Concrete store types used throughout the API.
type (
	ReportStore     = Store[record.Report, *record.Report]
	CoordinateStore = Store[record.Coordinate, *record.Coordinate]
)
