package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	identity := Identity{UserID: 7, FullName: "Alice A", Role: "staff"}
	token, err := store.Create(context.Background(), identity)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	got, err := store.Get(context.Background(), token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != identity {
		t.Fatalf("expected %+v, got %+v", identity, *got)
	}
}

func TestMemoryStore_GetUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(context.Background(), "no-such-token")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_AbsoluteExpiry(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	token, err := store.Create(context.Background(), Identity{UserID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Just inside the window
	now = now.Add(time.Hour - time.Second)
	if _, err := store.Get(context.Background(), token); err != nil {
		t.Fatalf("expected live session, got %v", err)
	}

	// At the boundary the session is gone; expiry is absolute, activity
	// does not renew it.
	now = now.Add(time.Second)
	if _, err := store.Get(context.Background(), token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestMemoryStore_GetAfterDestroy(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	token, err := store.Create(context.Background(), Identity{UserID: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.Destroy(context.Background(), token); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, err := store.Get(context.Background(), token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after destroy, got %v", err)
	}

	// Destroy is idempotent
	if err := store.Destroy(context.Background(), token); err != nil {
		t.Fatalf("second destroy should be a no-op, got %v", err)
	}
}

func TestMemoryStore_TokensAreIndependent(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	tokenA, _ := store.Create(context.Background(), Identity{UserID: 1})
	tokenB, _ := store.Create(context.Background(), Identity{UserID: 2})
	if tokenA == tokenB {
		t.Fatal("expected distinct tokens")
	}

	if err := store.Destroy(context.Background(), tokenA); err != nil {
		t.Fatalf("destroy: %v", err)
	}

	got, err := store.Get(context.Background(), tokenB)
	if err != nil {
		t.Fatalf("expected tokenB to survive, got %v", err)
	}
	if got.UserID != 2 {
		t.Fatalf("expected user 2, got %d", got.UserID)
	}
}
