package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrStorageUnavailable reports writes attempted while the deployment runs
// without a Redis backend.
var ErrStorageUnavailable = errors.New("settings storage unavailable")

// SettingsStore is a key-based accessor for per-user settings, backed by the
// shared Redis client. Settings never expire; removal is explicit. Without a
// cache reads see an empty store and writes fail with ErrStorageUnavailable.
type SettingsStore struct {
	cache *RedisCache
}

// NewSettingsStore creates a settings store over an existing cache
func NewSettingsStore(cache *RedisCache) *SettingsStore {
	return &SettingsStore{cache: cache}
}

// SettingsKey builds the storage key for one settings field of one user
func SettingsKey(uid, field string) string {
	return fmt.Sprintf("settings:%s:%s", uid, field)
}

// Get retrieves a settings field. The second return is false when the field
// has never been set.
func (s *SettingsStore) Get(ctx context.Context, uid, field string) (string, bool, error) {
	if s.cache == nil {
		return "", false, nil
	}
	var value string
	err := s.cache.Get(ctx, SettingsKey(uid, field), &value)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set writes a settings field
func (s *SettingsStore) Set(ctx context.Context, uid, field, value string) error {
	if s.cache == nil {
		return ErrStorageUnavailable
	}
	return s.cache.Set(ctx, SettingsKey(uid, field), value, 0)
}

// Remove deletes a settings field. Removing from an absent store succeeds;
// there is nothing to delete.
func (s *SettingsStore) Remove(ctx context.Context, uid, field string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, SettingsKey(uid, field))
}

// RemoveAll deletes every listed field for a user, used when an account is
// deleted. The first failure aborts the sweep.
func (s *SettingsStore) RemoveAll(ctx context.Context, uid string, fields []string) error {
	for _, field := range fields {
		if err := s.Remove(ctx, uid, field); err != nil {
			return fmt.Errorf("failed to remove setting %s: %w", field, err)
		}
	}
	return nil
}
