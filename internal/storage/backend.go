// Package storage holds the key-value backends the record stores and the
// session adapter persist through, plus the JSON snapshot helpers built on them.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrQuotaExceeded is returned by a backend that has no room left for a write.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Backend is a string key-value store. Get reports a missing key with
// ok=false and a nil error. A zero ttl keeps the value until deleted.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// namespaced prefixes every key of an inner backend
type namespaced struct {
	inner  Backend
	prefix string
}

// WithNamespace returns a view of backend whose keys live under prefix.
// An empty prefix returns backend unchanged.
func WithNamespace(backend Backend, prefix string) Backend {
	if prefix == "" {
		return backend
	}
	return &namespaced{inner: backend, prefix: prefix + ":"}
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return n.inner.Set(ctx, n.prefix+key, value, ttl)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}

func (n *namespaced) Ping(ctx context.Context) error {
	return n.inner.Ping(ctx)
}
