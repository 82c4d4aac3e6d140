package storage

import (
	"context"
	"encoding/json"

	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"go.uber.org/zap"
)

// Well-known keys
const (
	KeyUser             = "@ecopontos:user"
	KeyToken            = "@ecopontos:token"
	KeyTheme            = "@ecopontos:theme"
	KeyRegisteredUsers  = "@ecopontos:registered_users"
	KeyCollectionPoints = "@recicla365:collection-points"

	availabilityProbeKey = "__storage_test__"
)

// KeyValueStore is the session persistence adapter. Backend failures are
// logged and swallowed: reads return nothing and writes have no effect.
type KeyValueStore struct {
	backend Backend
	logger  *logging.SafeLogger
}

// NewKeyValueStore creates a KeyValueStore over backend
func NewKeyValueStore(backend Backend, logger *logging.SafeLogger) *KeyValueStore {
	return &KeyValueStore{backend: backend, logger: logger}
}

// Get returns the raw value stored under key
func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool) {
	value, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.Error("failed to read key", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, ok
}

// Set stores value under key
func (s *KeyValueStore) Set(ctx context.Context, key, value string) {
	if err := s.backend.Set(ctx, key, value, 0); err != nil {
		s.logger.Error("failed to write key", zap.String("key", key), zap.Error(err))
	}
}

// Remove deletes key
func (s *KeyValueStore) Remove(ctx context.Context, key string) {
	if err := s.backend.Delete(ctx, key); err != nil {
		s.logger.Error("failed to remove key", zap.String("key", key), zap.Error(err))
	}
}

// GetUser returns the persisted session user, or nil
func (s *KeyValueStore) GetUser(ctx context.Context) *models.User {
	raw, ok := s.Get(ctx, KeyUser)
	if !ok {
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("stored session user is not valid JSON", zap.Error(err))
		return nil
	}
	return &user
}

// SetUser persists the session user without its password hash
func (s *KeyValueStore) SetUser(ctx context.Context, user models.User) {
	payload, err := json.Marshal(user.WithoutPassword())
	if err != nil {
		s.logger.Error("failed to encode session user", zap.Error(err))
		return
	}
	s.Set(ctx, KeyUser, string(payload))
}

// RemoveUser clears the session user slot
func (s *KeyValueStore) RemoveUser(ctx context.Context) {
	s.Remove(ctx, KeyUser)
}

// GetToken returns the persisted auth token, or ""
func (s *KeyValueStore) GetToken(ctx context.Context) string {
	token, _ := s.Get(ctx, KeyToken)
	return token
}

// SetToken persists the auth token
func (s *KeyValueStore) SetToken(ctx context.Context, token string) {
	s.Set(ctx, KeyToken, token)
}

// RemoveToken clears the auth token slot
func (s *KeyValueStore) RemoveToken(ctx context.Context) {
	s.Remove(ctx, KeyToken)
}

// GetTheme returns the persisted theme, or "" when unset or unknown
func (s *KeyValueStore) GetTheme(ctx context.Context) models.Theme {
	raw, ok := s.Get(ctx, KeyTheme)
	if !ok {
		return ""
	}
	theme := models.Theme(raw)
	if !theme.IsValid() {
		return ""
	}
	return theme
}

// SetTheme persists the theme preference
func (s *KeyValueStore) SetTheme(ctx context.Context, theme models.Theme) {
	s.Set(ctx, KeyTheme, string(theme))
}

// Clear removes the user, token and theme slots
func (s *KeyValueStore) Clear(ctx context.Context) {
	for _, key := range []string{KeyUser, KeyToken, KeyTheme} {
		s.Remove(ctx, key)
	}
}

// ClearAuth removes the user and token slots, keeping the theme
func (s *KeyValueStore) ClearAuth(ctx context.Context) {
	s.RemoveUser(ctx)
	s.RemoveToken(ctx)
}

// IsAvailable probes whether the backend accepts writes
func (s *KeyValueStore) IsAvailable(ctx context.Context) bool {
	if err := s.backend.Set(ctx, availabilityProbeKey, availabilityProbeKey, 0); err != nil {
		return false
	}
	if err := s.backend.Delete(ctx, availabilityProbeKey); err != nil {
		return false
	}
	return true
}
