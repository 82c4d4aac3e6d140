package storage

import (
	"context"
	"testing"

	"github.com/recicla365/app-ecopontos/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withStorageBackend(t *testing.T, name string) {
	t.Helper()
	original := config.AppConfig
	config.AppConfig = &config.Config{StorageBackend: name}
	t.Cleanup(func() { config.AppConfig = original })
}

func TestOpen_Memory(t *testing.T) {
	withStorageBackend(t, config.StorageMemory)
	ctx := context.Background()

	backend, closeFn, err := Open(ctx)
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	defer closeFn(ctx)

	assert.IsType(t, &MemoryBackend{}, backend)
	require.NoError(t, backend.Set(ctx, "k", "v", 0))
	value, ok, err := backend.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestOpen_Unsupported(t *testing.T) {
	withStorageBackend(t, "sqlite")

	backend, closeFn, err := Open(context.Background())
	assert.Error(t, err)
	assert.Nil(t, backend)
	assert.Nil(t, closeFn)
}
