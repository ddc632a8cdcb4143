// internal/catalog/redis.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Komalkasat09/Content-creator-matching/internal/models"
)

// DefaultSnapshotKey is where the provisioning pipeline publishes the
// catalog as a single JSON array.
const DefaultSnapshotKey = "catalog:creators"

// LoadFromRedis reads the JSON catalog snapshot once and returns it as an
// immutable Static catalog. The snapshot is a startup provisioning source,
// not a request-path cache.
func LoadFromRedis(ctx context.Context, client *redis.Client, key string) (*Static, error) {
	if key == "" {
		key = DefaultSnapshotKey
	}

	raw, err := client.Get(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("read catalog snapshot %q: %w", key, err)
	}

	var creators []models.Creator
	if err := json.Unmarshal([]byte(raw), &creators); err != nil {
		return nil, fmt.Errorf("parse catalog snapshot %q: %w", key, err)
	}

	return NewStatic(creators), nil
}
