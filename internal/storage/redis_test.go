package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
)

func setupRedisStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	rs := NewRedisStorage(mr.Addr(), testLogger())
	return rs, mr
}

func TestRedisStorage_SaveAndLoad(t *testing.T) {
	rs, mr := setupRedisStorage(t)
	defer mr.Close()
	defer func() { _ = rs.Close() }()

	ctx := context.Background()
	save := testSave()
	id := save.State.ID

	if err := rs.SaveGame(ctx, id, save); err != nil {
		t.Fatalf("Failed to save game: %v", err)
	}

	loaded, err := rs.LoadGame(ctx, id)
	if err != nil {
		t.Fatalf("Failed to load game: %v", err)
	}

	if loaded.State.DungeonLevel != 3 {
		t.Errorf("Expected dungeon level 3, got %d", loaded.State.DungeonLevel)
	}
	player := loaded.Entities.Player()
	if player.Fighter == nil || player.Fighter.HP != 73 {
		t.Error("Expected the player's fighter stats to survive the round trip")
	}
}

func TestRedisStorage_LoadMissing(t *testing.T) {
	rs, mr := setupRedisStorage(t)
	defer mr.Close()
	defer func() { _ = rs.Close() }()

	_, err := rs.LoadGame(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRedisStorage_LatestID(t *testing.T) {
	rs, mr := setupRedisStorage(t)
	defer mr.Close()
	defer func() { _ = rs.Close() }()

	ctx := context.Background()

	if _, err := rs.LatestID(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound before any save, got %v", err)
	}

	save := testSave()
	if err := rs.SaveGame(ctx, save.State.ID, save); err != nil {
		t.Fatalf("Failed to save game: %v", err)
	}

	latest, err := rs.LatestID(ctx)
	if err != nil {
		t.Fatalf("Failed to read latest pointer: %v", err)
	}
	if latest != save.State.ID {
		t.Errorf("Expected latest %v, got %v", save.State.ID, latest)
	}
}

func TestRedisStorage_Delete(t *testing.T) {
	rs, mr := setupRedisStorage(t)
	defer mr.Close()
	defer func() { _ = rs.Close() }()

	ctx := context.Background()
	save := testSave()
	id := save.State.ID

	if err := rs.SaveGame(ctx, id, save); err != nil {
		t.Fatalf("Failed to save game: %v", err)
	}
	if err := rs.DeleteGame(ctx, id); err != nil {
		t.Fatalf("Failed to delete game: %v", err)
	}
	if _, err := rs.LoadGame(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestRedisStorage_SaveExpires(t *testing.T) {
	rs, mr := setupRedisStorage(t)
	defer mr.Close()
	defer func() { _ = rs.Close() }()

	ctx := context.Background()
	save := testSave()
	id := save.State.ID

	if err := rs.SaveGame(ctx, id, save); err != nil {
		t.Fatalf("Failed to save game: %v", err)
	}

	mr.FastForward(saveTTL + 1)

	if _, err := rs.LoadGame(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected the save to expire, got %v", err)
	}
}
