package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Saves expire a week after the last write.
const saveTTL = 7 * 24 * time.Hour

const (
	saveKeyPrefix = "savegame:"
	latestKey     = "savegame:latest"
)

// RedisStorage implements the Storage interface using Redis.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	return &RedisStorage{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) SaveGame(ctx context.Context, id uuid.UUID, save *SavedGame) error {
	save.State.UpdatedAt = time.Now()

	data, err := json.Marshal(save)
	if err != nil {
		r.logger.Error("Failed to marshal save", "uuid", id, "error", err)
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	key := saveKeyPrefix + id.String()
	if err := r.client.Set(ctx, key, string(data), saveTTL).Err(); err != nil {
		r.logger.Error("Failed to save game", "uuid", id, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}

	if err := r.client.Set(ctx, latestKey, id.String(), saveTTL).Err(); err != nil {
		r.logger.Error("Failed to update latest pointer", "uuid", id, "error", err)
		return fmt.Errorf("failed to update latest pointer: %w", err)
	}

	return nil
}

func (r *RedisStorage) LoadGame(ctx context.Context, id uuid.UUID) (*SavedGame, error) {
	key := saveKeyPrefix + id.String()
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to load game", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	var save SavedGame
	if err := json.Unmarshal([]byte(data), &save); err != nil {
		r.logger.Error("Failed to unmarshal save", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal save: %w", err)
	}

	return &save, nil
}

func (r *RedisStorage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	key := saveKeyPrefix + id.String()
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete game", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

func (r *RedisStorage) LatestID(ctx context.Context) (uuid.UUID, error) {
	data, err := r.client.Get(ctx, latestKey).Result()
	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to load latest pointer: %w", err)
	}

	id, err := uuid.Parse(data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid latest pointer: %w", err)
	}
	return id, nil
}
