package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/observability"
	"github.com/recicla365/app-ecopontos/internal/utils"
	"go.uber.org/zap"
)

// JSONCollection keeps a whole record set as one JSON array under a single
// key. Every mutation is a full snapshot replace.
type JSONCollection[T any] struct {
	backend Backend
	key     string
	name    string
	logger  *logging.SafeLogger
}

// NewJSONCollection creates a collection stored under key. name labels
// metrics and spans.
func NewJSONCollection[T any](backend Backend, key, name string, logger *logging.SafeLogger) *JSONCollection[T] {
	return &JSONCollection[T]{
		backend: backend,
		key:     key,
		name:    name,
		logger:  logger,
	}
}

// Load returns the stored snapshot. A missing key or corrupt JSON yields an
// empty slice. A backend failure is returned wrapped in models.ErrStorageRead.
func (c *JSONCollection[T]) Load(ctx context.Context) ([]T, error) {
	ctx, span, done := utils.TraceStoreOperation(ctx, c.name, "load")
	defer done()
	start := time.Now()
	defer func() {
		observability.OperationDuration.WithLabelValues(c.name + "_load").Observe(time.Since(start).Seconds())
	}()

	raw, ok, err := c.backend.Get(ctx, c.key)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"store.key": c.key})
		observability.StoreOperations.WithLabelValues(c.name, "load", "error").Inc()
		c.logger.Error("failed to read collection", zap.String("store", c.name), zap.Error(err))
		return []T{}, fmt.Errorf("%w: %w", models.ErrStorageRead, err)
	}
	if !ok || raw == "" {
		observability.StoreOperations.WithLabelValues(c.name, "load", "empty").Inc()
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		observability.StoreOperations.WithLabelValues(c.name, "load", "corrupt").Inc()
		c.logger.Warn("stored collection is not valid JSON, treating as empty",
			zap.String("store", c.name), zap.Error(err))
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}

	utils.AddSpanAttribute(span, "store.count", len(items))
	observability.StoreOperations.WithLabelValues(c.name, "load", "success").Inc()
	return items, nil
}

// Save replaces the stored snapshot with items
func (c *JSONCollection[T]) Save(ctx context.Context, items []T) error {
	ctx, span, done := utils.TraceStoreOperation(ctx, c.name, "save")
	defer done()
	start := time.Now()
	defer func() {
		observability.OperationDuration.WithLabelValues(c.name + "_save").Observe(time.Since(start).Seconds())
	}()

	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		observability.StoreOperations.WithLabelValues(c.name, "save", "error").Inc()
		return fmt.Errorf("%w: %w", models.ErrStorageWrite, err)
	}

	if err := c.backend.Set(ctx, c.key, string(payload), 0); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"store.key": c.key})
		observability.StoreOperations.WithLabelValues(c.name, "save", "error").Inc()
		c.logger.Error("failed to save collection", zap.String("store", c.name), zap.Error(err))
		return fmt.Errorf("%w: %w", models.ErrStorageWrite, err)
	}

	utils.AddSpanAttribute(span, "store.count", len(items))
	observability.StoreOperations.WithLabelValues(c.name, "save", "success").Inc()
	return nil
}
