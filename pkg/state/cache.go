package state

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/viccon/sturdyc"
)

// Cache holds at most one snapshot per household. It is an optional
// accelerator: correctness never depends on it, a nil or cold cache simply
// means every read rebuilds from the source of truth. There is no partial
// invalidation; the derived fields are cross-dependent, so a write always
// drops the whole entry.
type Cache interface {
	Get(ctx context.Context, householdID uuid.UUID) (*HouseholdState, bool)
	Set(ctx context.Context, householdID uuid.UUID, snapshot *HouseholdState)
	Delete(ctx context.Context, householdID uuid.UUID)
}

// CacheConfig carries the sturdyc construction parameters.
type CacheConfig struct {
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
}

// DefaultCacheConfig matches the snapshot TTL of 300 seconds.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Capacity:           1024,
		NumShards:          64,
		TTL:                300 * time.Second,
		EvictionPercentage: 10,
	}
}

type sturdycCache struct {
	client *sturdyc.Client[*HouseholdState]
}

// NewCache builds the sturdyc-backed snapshot cache.
func NewCache(cfg CacheConfig) Cache {
	return &sturdycCache{
		client: sturdyc.New[*HouseholdState](cfg.Capacity, cfg.NumShards, cfg.TTL, cfg.EvictionPercentage),
	}
}

func (c *sturdycCache) Get(_ context.Context, householdID uuid.UUID) (*HouseholdState, bool) {
	return c.client.Get(cacheKey(householdID))
}

func (c *sturdycCache) Set(_ context.Context, householdID uuid.UUID, snapshot *HouseholdState) {
	c.client.Set(cacheKey(householdID), snapshot)
}

func (c *sturdycCache) Delete(_ context.Context, householdID uuid.UUID) {
	c.client.Delete(cacheKey(householdID))
}

func cacheKey(householdID uuid.UUID) string {
	return "state:" + householdID.String()
}
