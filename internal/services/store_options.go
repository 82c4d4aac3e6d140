package services

import (
	"time"

	"github.com/alexedwards/argon2id"
)

// storeConfig carries the optional settings shared by the record stores
type storeConfig struct {
	nowFunc        func() time.Time
	passwordParams *argon2id.Params
}

// StoreOption configures a record store
type StoreOption func(*storeConfig)

// WithNowFunc overrides the clock used for ids, timestamps and statistics windows.
// Useful for testing.
func WithNowFunc(nowFunc func() time.Time) StoreOption {
	return func(c *storeConfig) {
		c.nowFunc = nowFunc
	}
}

// WithPasswordParams overrides the argon2id parameters used to hash passwords
func WithPasswordParams(params *argon2id.Params) StoreOption {
	return func(c *storeConfig) {
		c.passwordParams = params
	}
}

func newStoreConfig(opts []StoreOption) storeConfig {
	cfg := storeConfig{
		nowFunc:        func() time.Time { return time.Now().UTC() },
		passwordParams: argon2id.DefaultParams,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
