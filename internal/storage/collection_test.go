package storage

import (
	"context"
	"testing"

	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestCollection(backend Backend) *JSONCollection[record] {
	return NewJSONCollection[record](backend, "@test:records", "records", logging.NewSafeLogger(zap.NewNop()))
}

func TestJSONCollection_LoadEmpty(t *testing.T) {
	collection := newTestCollection(NewMemoryBackend())

	items, err := collection.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestJSONCollection_SaveLoad(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	collection := newTestCollection(backend)

	want := []record{{ID: "1", Name: "Ecoponto Centro"}, {ID: "2", Name: "Ecoponto Trindade"}}
	require.NoError(t, collection.Save(ctx, want))

	got, err := collection.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, ok, _ := backend.Get(ctx, "@test:records")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1","name":"Ecoponto Centro"},{"id":"2","name":"Ecoponto Trindade"}]`, raw)
}

func TestJSONCollection_SaveNil(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	collection := newTestCollection(backend)

	require.NoError(t, collection.Save(ctx, nil))

	raw, _, _ := backend.Get(ctx, "@test:records")
	assert.Equal(t, "[]", raw)
}

func TestJSONCollection_CorruptIsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, "@test:records", "{not json", 0))

	items, err := newTestCollection(backend).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestJSONCollection_NullIsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, "@test:records", "null", 0))

	items, err := newTestCollection(backend).Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestJSONCollection_BackendFailures(t *testing.T) {
	ctx := context.Background()
	collection := newTestCollection(failingBackend{})

	items, err := collection.Load(ctx)
	assert.ErrorIs(t, err, models.ErrStorageRead)
	assert.ErrorIs(t, err, errBackendDown)
	assert.Empty(t, items)

	err = collection.Save(ctx, []record{{ID: "1"}})
	assert.ErrorIs(t, err, models.ErrStorageWrite)
	assert.ErrorIs(t, err, errBackendDown)
}

func TestJSONCollection_QuotaExceededKeepsPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend(WithQuota(60))
	collection := newTestCollection(backend)

	first := []record{{ID: "1", Name: "a"}}
	require.NoError(t, collection.Save(ctx, first))

	err := collection.Save(ctx, []record{{ID: "1", Name: "a"}, {ID: "2", Name: "a much longer name than fits"}})
	assert.ErrorIs(t, err, models.ErrStorageWrite)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	got, err := collection.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)
}
