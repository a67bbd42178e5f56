package storage

import (
	"context"
	"time"

	"github.com/aquawatch/aquawatch/internal/record"
)

// OperationRecorder receives timing for every backend call.
// *middleware.StorageMetrics satisfies it.
type OperationRecorder interface {
	RecordOperation(backend, collection, operation string, duration time.Duration, err error)
}

// InstrumentedStore wraps a Store and records per-operation metrics.
type InstrumentedStore[T any, PT interface {
	*T
	Entity
}] struct {
	inner      Store[T, PT]
	backend    string
	collection string
	recorder   OperationRecorder
}

// Instrument decorates a store with operation metrics. backend and collection
// become metric attributes.
func Instrument[T any, PT interface {
	*T
	Entity
}](inner Store[T, PT], backend, collection string, recorder OperationRecorder) *InstrumentedStore[T, PT] {
	return &InstrumentedStore[T, PT]{
		inner:      inner,
		backend:    backend,
		collection: collection,
		recorder:   recorder,
	}
}

func (s *InstrumentedStore[T, PT]) List(ctx context.Context) ([]T, error) {
	start := time.Now()
	recs, err := s.inner.List(ctx)
	s.recorder.RecordOperation(s.backend, s.collection, "list", time.Since(start), err)
	return recs, err
}

func (s *InstrumentedStore[T, PT]) Insert(ctx context.Context, rec T) (T, error) {
	start := time.Now()
	stored, err := s.inner.Insert(ctx, rec)
	s.recorder.RecordOperation(s.backend, s.collection, "insert", time.Since(start), err)
	return stored, err
}

func (s *InstrumentedStore[T, PT]) UpdateStatus(ctx context.Context, id string, status record.Status) (T, error) {
	start := time.Now()
	updated, err := s.inner.UpdateStatus(ctx, id, status)
	s.recorder.RecordOperation(s.backend, s.collection, "update_status", time.Since(start), err)
	return updated, err
}

func (s *InstrumentedStore[T, PT]) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, id)
	s.recorder.RecordOperation(s.backend, s.collection, "delete", time.Since(start), err)
	return err
}

func (s *InstrumentedStore[T, PT]) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.inner.Ping(ctx)
	s.recorder.RecordOperation(s.backend, s.collection, "ping", time.Since(start), err)
	return err
}

var _ ReportStore = (*InstrumentedStore[record.Report, *record.Report])(nil)
