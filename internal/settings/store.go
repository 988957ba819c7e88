// Package settings keeps per-user application settings behind a small
// interface so the HTTP layer, server rendering and tests can swap the
// persistence mechanism.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"kamstim/internal/entity"

	"github.com/redis/go-redis/v9"
)

type Store interface {
	Get(ctx context.Context, userID string) (entity.Settings, error)
	Put(ctx context.Context, userID string, s entity.Settings) error
}

// RedisStore persists settings as JSON values keyed per user.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func settingsKey(userID string) string {
	return fmt.Sprintf("settings:%s", userID)
}

func (s *RedisStore) Get(ctx context.Context, userID string) (entity.Settings, error) {
	data, err := s.client.Get(ctx, settingsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.DefaultSettings(), nil
		}
		return entity.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	var out entity.Settings
	if err := json.Unmarshal(data, &out); err != nil {
		return entity.Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return out, nil
}

func (s *RedisStore) Put(ctx context.Context, userID string, settings entity.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.client.Set(ctx, settingsKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store settings: %w", err)
	}
	return nil
}

// MemoryStore is the in-memory substitute used in tests and when Redis is
// unavailable.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]entity.Settings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]entity.Settings)}
}

func (s *MemoryStore) Get(ctx context.Context, userID string) (entity.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if settings, ok := s.data[userID]; ok {
		return settings, nil
	}
	return entity.DefaultSettings(), nil
}

func (s *MemoryStore) Put(ctx context.Context, userID string, settings entity.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = settings
	return nil
}
