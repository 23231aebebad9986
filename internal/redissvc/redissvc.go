package redissvc

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/acrispim/shopdash/internal/dashboard"
)

const snapshotKey = "dashboard:snapshot:latest"

// SnapshotCache stores the latest dashboard snapshot in Redis so sibling
// processes can serve it without recomputing. Entries expire so a dead
// publisher cannot pin stale data forever.
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

// Publish replaces the cached snapshot.
func (c *SnapshotCache) Publish(ctx context.Context, snap dashboard.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, snapshotKey, payload, c.ttl).Err()
}

// Latest returns the cached snapshot, reporting false on a cache miss.
func (c *SnapshotCache) Latest(ctx context.Context) (dashboard.Snapshot, bool, error) {
	payload, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return dashboard.Snapshot{}, false, nil
	}
	if err != nil {
		return dashboard.Snapshot{}, false, err
	}

	var snap dashboard.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return dashboard.Snapshot{}, false, err
	}
	return snap, true, nil
}
