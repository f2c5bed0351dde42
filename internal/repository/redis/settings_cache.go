package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"buddyboard/internal/policy"

	"github.com/redis/go-redis/v9"
)

const (
	SettingsSnapshotKey = "settings:moderation:snapshot"
	SettingsSnapshotTTL = 30 * time.Second
)

var ErrSnapshotMiss = errors.New("settings snapshot miss")

// SettingsCache keeps the assembled moderation snapshot for a short window so
// post creation does not hit mysql on every request. Staleness inside the TTL
// is acceptable for moderation policy.
type SettingsCache struct{}

func (c *SettingsCache) Get() (policy.ModerationSettings, error) {
	var snap policy.ModerationSettings
	raw, err := Client.Get(context.Background(), SettingsSnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return snap, ErrSnapshotMiss
	}
	if err != nil {
		return snap, ErrRedisUnavailable
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return snap, ErrSnapshotMiss
	}
	return snap, nil
}

func (c *SettingsCache) Set(snap policy.ModerationSettings) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if err := Client.Set(context.Background(), SettingsSnapshotKey, raw, SettingsSnapshotTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

// Invalidate drops the snapshot after an admin settings change.
func (c *SettingsCache) Invalidate() error {
	return Client.Del(context.Background(), SettingsSnapshotKey).Err()
}
