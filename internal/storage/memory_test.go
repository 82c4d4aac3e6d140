package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	_, ok, err := backend.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.Set(ctx, "k", "v", 0))
	value, ok, err := backend.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
	assert.Equal(t, 1, backend.Len())

	require.NoError(t, backend.Delete(ctx, "k"))
	_, ok, _ = backend.Get(ctx, "k")
	assert.False(t, ok)

	// deleting a missing key is not an error
	assert.NoError(t, backend.Delete(ctx, "k"))
	assert.NoError(t, backend.Ping(ctx))
}

func TestMemoryBackend_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	backend := NewMemoryBackend(WithClock(func() time.Time { return now }))

	require.NoError(t, backend.Set(ctx, "cep", "cached", time.Minute))

	_, ok, _ := backend.Get(ctx, "cep")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = backend.Get(ctx, "cep")
	assert.False(t, ok)
	assert.Equal(t, 0, backend.Len())
}

func TestMemoryBackend_Quota(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend(WithQuota(20))

	require.NoError(t, backend.Set(ctx, "a", strings.Repeat("x", 10), 0))

	err := backend.Set(ctx, "b", strings.Repeat("y", 15), 0)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	// replacing a key only counts the new size
	require.NoError(t, backend.Set(ctx, "a", strings.Repeat("z", 19), 0))

	value, ok, _ := backend.Get(ctx, "a")
	assert.True(t, ok)
	assert.Len(t, value, 19)
}

func TestWithNamespace(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryBackend()

	deviceA := WithNamespace(inner, "device-a")
	deviceB := WithNamespace(inner, "device-b")

	require.NoError(t, deviceA.Set(ctx, KeyToken, "token-a", 0))
	require.NoError(t, deviceB.Set(ctx, KeyToken, "token-b", 0))

	value, ok, _ := deviceA.Get(ctx, KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "token-a", value)

	value, _, _ = inner.Get(ctx, "device-b:"+KeyToken)
	assert.Equal(t, "token-b", value)

	require.NoError(t, deviceA.Delete(ctx, KeyToken))
	_, ok, _ = deviceA.Get(ctx, KeyToken)
	assert.False(t, ok)
	_, ok, _ = deviceB.Get(ctx, KeyToken)
	assert.True(t, ok)

	assert.NoError(t, deviceA.Ping(ctx))
	assert.Same(t, inner, WithNamespace(inner, "").(*MemoryBackend))
}
