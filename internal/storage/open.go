package storage

import (
	"context"
	"fmt"

	"github.com/recicla365/app-ecopontos/internal/config"
	"github.com/recicla365/app-ecopontos/internal/logging"
	"go.uber.org/zap"
)

// redisKeyPrefix namespaces every key this service writes to Redis
const redisKeyPrefix = "ecopontos:"

// Open connects the backend selected by STORAGE_BACKEND. The returned close
// function releases the connection and is never nil on success.
func Open(ctx context.Context) (Backend, func(context.Context), error) {
	switch config.AppConfig.StorageBackend {
	case config.StorageRedis:
		if err := config.InitRedis(ctx); err != nil {
			return nil, nil, err
		}
		return NewRedisBackend(config.Redis, redisKeyPrefix), func(context.Context) {
			if err := config.Redis.Close(); err != nil {
				logging.Logger.Error("failed to close Redis client", zap.Error(err))
			}
		}, nil

	case config.StorageMongo:
		if err := config.InitMongoDB(ctx); err != nil {
			return nil, nil, err
		}
		return NewMongoBackend(config.MongoDB.Collection(config.AppConfig.MongoKVCollection)), config.CloseMongoDB, nil

	case config.StorageMemory:
		logging.Logger.Warn("using in-memory storage, data is lost on restart")
		return NewMemoryBackend(), func(context.Context) {}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage backend %q", config.AppConfig.StorageBackend)
	}
}
