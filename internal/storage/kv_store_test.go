package storage

import (
	"context"
	"testing"
	"time"

	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestKV(backend Backend) *KeyValueStore {
	return NewKeyValueStore(backend, logging.NewSafeLogger(zap.NewNop()))
}

func TestKeyValueStore_User(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	kv := newTestKV(backend)

	assert.Nil(t, kv.GetUser(ctx))

	user := models.User{
		ID:           "user_1",
		Name:         "Maria Souza",
		Email:        "maria@example.com",
		PasswordHash: "$argon2id$secret",
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	kv.SetUser(ctx, user)

	got := kv.GetUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "user_1", got.ID)
	assert.Empty(t, got.PasswordHash)

	raw, _, _ := backend.Get(ctx, KeyUser)
	assert.NotContains(t, raw, "argon2id")

	kv.RemoveUser(ctx)
	assert.Nil(t, kv.GetUser(ctx))
}

func TestKeyValueStore_CorruptUser(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, KeyUser, "not-json", 0))

	assert.Nil(t, newTestKV(backend).GetUser(ctx))
}

func TestKeyValueStore_TokenAndTheme(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(NewMemoryBackend())

	assert.Empty(t, kv.GetToken(ctx))
	kv.SetToken(ctx, "token_user_1_1700000000000")
	assert.Equal(t, "token_user_1_1700000000000", kv.GetToken(ctx))
	kv.RemoveToken(ctx)
	assert.Empty(t, kv.GetToken(ctx))

	assert.Equal(t, models.Theme(""), kv.GetTheme(ctx))
	kv.SetTheme(ctx, models.ThemeDark)
	assert.Equal(t, models.ThemeDark, kv.GetTheme(ctx))

	kv.Set(ctx, KeyTheme, "sepia")
	assert.Equal(t, models.Theme(""), kv.GetTheme(ctx))
}

func TestKeyValueStore_ClearAndClearAuth(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(NewMemoryBackend())

	kv.SetUser(ctx, models.User{ID: "user_1"})
	kv.SetToken(ctx, "token")
	kv.SetTheme(ctx, models.ThemeDark)

	kv.ClearAuth(ctx)
	assert.Nil(t, kv.GetUser(ctx))
	assert.Empty(t, kv.GetToken(ctx))
	assert.Equal(t, models.ThemeDark, kv.GetTheme(ctx))

	kv.SetUser(ctx, models.User{ID: "user_1"})
	kv.SetToken(ctx, "token")
	kv.Clear(ctx)
	assert.Nil(t, kv.GetUser(ctx))
	assert.Empty(t, kv.GetToken(ctx))
	assert.Equal(t, models.Theme(""), kv.GetTheme(ctx))
}

func TestKeyValueStore_GenericAccess(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(NewMemoryBackend())

	_, ok := kv.Get(ctx, "custom")
	assert.False(t, ok)

	kv.Set(ctx, "custom", "value")
	value, ok := kv.Get(ctx, "custom")
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	kv.Remove(ctx, "custom")
	_, ok = kv.Get(ctx, "custom")
	assert.False(t, ok)
}

func TestKeyValueStore_FailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(failingBackend{})

	assert.NotPanics(t, func() {
		kv.SetUser(ctx, models.User{ID: "user_1"})
		kv.SetToken(ctx, "token")
		kv.SetTheme(ctx, models.ThemeLight)
		kv.Clear(ctx)
	})
	assert.Nil(t, kv.GetUser(ctx))
	assert.Empty(t, kv.GetToken(ctx))
	assert.Equal(t, models.Theme(""), kv.GetTheme(ctx))
	assert.False(t, kv.IsAvailable(ctx))
}

func TestKeyValueStore_IsAvailable(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	assert.True(t, newTestKV(backend).IsAvailable(ctx))
	assert.Equal(t, 0, backend.Len())

	full := NewMemoryBackend(WithQuota(4))
	assert.False(t, newTestKV(full).IsAvailable(ctx))
}
