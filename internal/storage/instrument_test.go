package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquawatch/aquawatch/internal/record"
	"github.com/aquawatch/aquawatch/internal/storage"
)

type recordedOp struct {
	backend    string
	collection string
	operation  string
	failed     bool
}

type fakeRecorder struct {
	ops []recordedOp
}

func (f *fakeRecorder) RecordOperation(backend, collection, operation string, _ time.Duration, err error) {
	f.ops = append(f.ops, recordedOp{
		backend:    backend,
		collection: collection,
		operation:  operation,
		failed:     err != nil,
	})
}

func TestInstrumentedStore_RecordsOperations(t *testing.T) {
	recorder := &fakeRecorder{}
	inner := storage.NewMemoryStore[record.Report, *record.Report]()
	store := storage.Instrument[record.Report, *record.Report](inner, "memory", "reports", recorder)
	ctx := context.Background()

	stored, err := store.Insert(ctx, testReport("spill"))
	require.NoError(t, err)

	_, err = store.List(ctx)
	require.NoError(t, err)

	_, err = store.UpdateStatus(ctx, stored.ID, record.StatusReviewed)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, stored.ID))
	require.NoError(t, store.Ping(ctx))

	require.Len(t, recorder.ops, 5)
	assert.Equal(t, "insert", recorder.ops[0].operation)
	assert.Equal(t, "list", recorder.ops[1].operation)
	assert.Equal(t, "update_status", recorder.ops[2].operation)
	assert.Equal(t, "delete", recorder.ops[3].operation)
	assert.Equal(t, "ping", recorder.ops[4].operation)
	for _, op := range recorder.ops {
		assert.Equal(t, "memory", op.backend)
		assert.Equal(t, "reports", op.collection)
		assert.False(t, op.failed)
	}
}

func TestInstrumentedStore_RecordsFailures(t *testing.T) {
	recorder := &fakeRecorder{}
	inner := storage.NewMemoryStore[record.Report, *record.Report]()
	store := storage.Instrument[record.Report, *record.Report](inner, "memory", "reports", recorder)

	err := store.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.Len(t, recorder.ops, 1)
	assert.True(t, recorder.ops[0].failed)
}
