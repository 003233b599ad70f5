package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStorage implements the Storage interface on the local filesystem.
// Each save is one JSON file named <id>.json; a "latest" file holds the
// id of the most recent save.
type FileStorage struct {
	dir    string
	logger *slog.Logger
}

// Ensure FileStorage implements Storage interface
var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates a file storage rooted at dir, creating the
// directory if needed.
func NewFileStorage(dir string, logger *slog.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

func (f *FileStorage) Ping(ctx context.Context) error {
	if _, err := os.Stat(f.dir); err != nil {
		return fmt.Errorf("save directory unavailable: %w", err)
	}
	return nil
}

func (f *FileStorage) Close() error {
	return nil
}

func (f *FileStorage) savePath(id uuid.UUID) string {
	return filepath.Join(f.dir, id.String()+".json")
}

func (f *FileStorage) latestPath() string {
	return filepath.Join(f.dir, "latest")
}

func (f *FileStorage) SaveGame(ctx context.Context, id uuid.UUID, save *SavedGame) error {
	save.State.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(save, "", "  ")
	if err != nil {
		f.logger.Error("Failed to marshal save", "uuid", id, "error", err)
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	if err := os.WriteFile(f.savePath(id), data, 0o644); err != nil {
		f.logger.Error("Failed to write save", "uuid", id, "error", err)
		return fmt.Errorf("failed to write save: %w", err)
	}

	if err := os.WriteFile(f.latestPath(), []byte(id.String()), 0o644); err != nil {
		f.logger.Error("Failed to update latest pointer", "uuid", id, "error", err)
		return fmt.Errorf("failed to update latest pointer: %w", err)
	}

	return nil
}

func (f *FileStorage) LoadGame(ctx context.Context, id uuid.UUID) (*SavedGame, error) {
	data, err := os.ReadFile(f.savePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		f.logger.Error("Failed to read save", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	var save SavedGame
	if err := json.Unmarshal(data, &save); err != nil {
		f.logger.Error("Failed to unmarshal save", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal save: %w", err)
	}

	return &save, nil
}

func (f *FileStorage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	if err := os.Remove(f.savePath(id)); err != nil && !os.IsNotExist(err) {
		f.logger.Error("Failed to delete save", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}

func (f *FileStorage) LatestID(ctx context.Context) (uuid.UUID, error) {
	data, err := os.ReadFile(f.latestPath())
	if err != nil {
		if os.IsNotExist(err) {
			return uuid.Nil, ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to read latest pointer: %w", err)
	}

	id, err := uuid.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid latest pointer: %w", err)
	}

	// The pointer may outlive a deleted save.
	if _, err := os.Stat(f.savePath(id)); os.IsNotExist(err) {
		return uuid.Nil, ErrNotFound
	}
	return id, nil
}
