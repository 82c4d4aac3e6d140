package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/recicla365/app-ecopontos/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func requireContainers(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_CONTAINER_TESTS") == "" {
		t.Skip("Skipping container tests: RUN_CONTAINER_TESTS not set")
	}
}

// exerciseBackend runs the behaviour every Backend must share
func exerciseBackend(t *testing.T, backend Backend) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, backend.Ping(ctx))

	_, ok, err := backend.Get(ctx, "test:missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.Set(ctx, "test:key", `[{"id":"1"}]`, 0))
	value, ok, err := backend.Get(ctx, "test:key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)

	require.NoError(t, backend.Set(ctx, "test:key", "replaced", 0))
	value, _, _ = backend.Get(ctx, "test:key")
	assert.Equal(t, "replaced", value)

	require.NoError(t, backend.Delete(ctx, "test:key"))
	_, ok, err = backend.Get(ctx, "test:key")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.Delete(ctx, "test:key"))
}

func TestRedisBackend_Container(t *testing.T) {
	requireContainers(t)
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "Failed to start Redis container")
	defer func() { _ = container.Terminate(ctx) }()

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	backend := NewRedisBackend(redisclient.NewClient(redis.NewClient(opts)), "ecopontos:")
	exerciseBackend(t, backend)

	require.NoError(t, backend.Set(ctx, "test:ttl", "v", time.Second))
	assert.Eventually(t, func() bool {
		_, ok, _ := backend.Get(ctx, "test:ttl")
		return !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestMongoBackend_Container(t *testing.T) {
	requireContainers(t)
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "Failed to start MongoDB container")
	defer func() { _ = container.Terminate(ctx) }()

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(ctx) }()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	backend := NewMongoBackend(
		client.Database("ecopontos_test").Collection("kv_store"),
		WithMongoClock(func() time.Time { return now }),
	)
	exerciseBackend(t, backend)

	require.NoError(t, backend.Set(ctx, "test:ttl", "v", time.Minute))
	_, ok, _ := backend.Get(ctx, "test:ttl")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, _ = backend.Get(ctx, "test:ttl")
	assert.False(t, ok)
}
