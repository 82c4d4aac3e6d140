package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// kvDocument is one key of the store, keyed by _id
type kvDocument struct {
	Key       string     `bson:"_id"`
	Value     string     `bson:"value"`
	UpdatedAt time.Time  `bson:"updated_at"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

// MongoBackend stores each key as one document of a collection
type MongoBackend struct {
	collection *mongo.Collection
	nowFunc    func() time.Time
}

// MongoOption configures a MongoBackend
type MongoOption func(*MongoBackend)

// WithMongoClock can be used to override the clock. Useful for testing.
func WithMongoClock(nowFunc func() time.Time) MongoOption {
	return func(m *MongoBackend) {
		m.nowFunc = nowFunc
	}
}

// NewMongoBackend creates a MongoBackend over collection
func NewMongoBackend(collection *mongo.Collection, opts ...MongoOption) *MongoBackend {
	m := &MongoBackend{
		collection: collection,
		nowFunc:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MongoBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if doc.ExpiresAt != nil && !m.nowFunc().Before(*doc.ExpiresAt) {
		return "", false, nil
	}
	return doc.Value, true, nil
}

func (m *MongoBackend) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	now := m.nowFunc()
	doc := kvDocument{Key: key, Value: value, UpdatedAt: now}
	if ttl > 0 {
		expiresAt := now.Add(ttl)
		doc.ExpiresAt = &expiresAt
	}

	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (m *MongoBackend) Delete(ctx context.Context, key string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (m *MongoBackend) Ping(ctx context.Context) error {
	return m.collection.Database().Client().Ping(ctx, readpref.Primary())
}
