package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/domain"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestSessionRepository_CreateAndFind(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "sess-1",
		UserID:    42,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}

	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	found, err := repo.FindByID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("failed to find session: %v", err)
	}
	if found.ID != "sess-1" {
		t.Errorf("expected session ID sess-1, got %s", found.ID)
	}
	if found.UserID != 42 {
		t.Errorf("expected user ID 42, got %d", found.UserID)
	}
}

func TestSessionRepository_FindMissing(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	_, err := repo.FindByID(context.Background(), "no-such-session")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepository_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "sess-1",
		UserID:    42,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	if err := repo.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}

	if _, err := repo.FindByID(ctx, "sess-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSessionRepository_DeleteIsIdempotent(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)

	if err := repo.Delete(context.Background(), "no-such-session"); err != nil {
		t.Errorf("deleting a missing session must not fail, got %v", err)
	}
}

func TestSessionRepository_ExpiredSessionIsPurged(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	// ExpiresAt in the past while the Redis key still exists: the repository
	// must treat the session as expired and remove the stale key.
	session := &domain.Session{
		ID:        "sess-stale",
		UserID:    42,
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	if _, err := repo.FindByID(ctx, "sess-stale"); !errors.Is(err, domain.ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}

	if mr.Exists("session:sess-stale") {
		t.Error("expected stale session key to be purged")
	}
}

func TestSessionRepository_RedisTTLEviction(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "sess-ttl",
		UserID:    42,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	if _, err := repo.FindByID(ctx, "sess-ttl"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after TTL eviction, got %v", err)
	}
}
