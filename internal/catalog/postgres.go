// internal/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/Komalkasat09/Content-creator-matching/internal/models"
)

const creatorsQuery = `
	SELECT id, handle, verticals, platforms, audience_geo, audience_age,
	       avg_views, engagement_rate, past_brand_categories, content_tone,
	       safety_flags, base_price_inr
	FROM creators
	ORDER BY id`

// LoadFromPostgres reads the full creators table once and returns it as an
// immutable Static catalog. Distribution maps and safety flags are stored as
// JSONB columns; label sets as text arrays.
func LoadFromPostgres(ctx context.Context, db *sql.DB) (*Static, error) {
	rows, err := db.QueryContext(ctx, creatorsQuery)
	if err != nil {
		return nil, fmt.Errorf("query creators: %w", err)
	}
	defer rows.Close()

	var creators []models.Creator
	for rows.Next() {
		var (
			c                        models.Creator
			geoRaw, ageRaw, flagsRaw []byte
		)
		err := rows.Scan(
			&c.ID,
			&c.Handle,
			pq.Array(&c.Verticals),
			pq.Array(&c.Platforms),
			&geoRaw,
			&ageRaw,
			&c.AvgViews,
			&c.EngagementRate,
			pq.Array(&c.PastBrandCategories),
			pq.Array(&c.ContentTone),
			&flagsRaw,
			&c.BasePriceINR,
		)
		if err != nil {
			return nil, fmt.Errorf("scan creator: %w", err)
		}

		if err := json.Unmarshal(geoRaw, &c.AudienceGeo); err != nil {
			return nil, fmt.Errorf("creator %s: audience_geo: %w", c.ID, err)
		}
		if err := json.Unmarshal(ageRaw, &c.AudienceAge); err != nil {
			return nil, fmt.Errorf("creator %s: audience_age: %w", c.ID, err)
		}
		if err := json.Unmarshal(flagsRaw, &c.SafetyFlags); err != nil {
			return nil, fmt.Errorf("creator %s: safety_flags: %w", c.ID, err)
		}

		creators = append(creators, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate creators: %w", err)
	}

	return NewStatic(creators), nil
}
