package state

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCacheSetGetDelete(t *testing.T) {
	cache := NewCache(DefaultCacheConfig())
	ctx := context.Background()
	householdID := uuid.New()

	if _, ok := cache.Get(ctx, householdID); ok {
		t.Fatalf("cold cache should miss")
	}

	snapshot := Derive(householdID, nil, nil, nil, nil, testToday)
	cache.Set(ctx, householdID, snapshot)

	got, ok := cache.Get(ctx, householdID)
	if !ok {
		t.Fatalf("expected a hit after Set")
	}
	if got != snapshot {
		t.Errorf("cache returned a different snapshot")
	}

	cache.Delete(ctx, householdID)
	if _, ok := cache.Get(ctx, householdID); ok {
		t.Errorf("expected a miss after Delete")
	}
}

func TestCacheEntriesExpire(t *testing.T) {
	cfg := DefaultCacheConfig()
	cfg.TTL = 10 * time.Millisecond
	cache := NewCache(cfg)
	ctx := context.Background()
	householdID := uuid.New()

	cache.Set(ctx, householdID, Derive(householdID, nil, nil, nil, nil, testToday))
	time.Sleep(30 * time.Millisecond)

	if _, ok := cache.Get(ctx, householdID); ok {
		t.Errorf("entry should have expired")
	}
}

func TestCacheKeysAreScopedPerHousehold(t *testing.T) {
	cache := NewCache(DefaultCacheConfig())
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	cache.Set(ctx, a, Derive(a, nil, nil, nil, nil, testToday))

	if _, ok := cache.Get(ctx, b); ok {
		t.Errorf("household b should not see household a's snapshot")
	}
}
