// internal/catalog/fixture.go
package catalog

import "github.com/Komalkasat09/Content-creator-matching/internal/models"

// Fixture returns the built-in 3-creator sample catalog used when no
// external catalog source is configured.
func Fixture() *Static {
	return NewStatic([]models.Creator{
		{
			ID:                  "c1",
			Handle:              "@fitwithria",
			Verticals:           []string{"Fitness", "Lifestyle"},
			Platforms:           []string{"Instagram", "YouTube"},
			AudienceGeo:         map[string]float64{"Mumbai": 0.42, "Delhi": 0.2},
			AudienceAge:         map[string]float64{"18-24": 0.55, "25-34": 0.35},
			AvgViews:            120000,
			EngagementRate:      0.047,
			PastBrandCategories: []string{"Fashion", "Wellness"},
			ContentTone:         []string{"energetic", "fun"},
			SafetyFlags:         map[string]bool{"adult": false},
			BasePriceINR:        80000,
		},
		{
			ID:                  "c2",
			Handle:              "@techbyraj",
			Verticals:           []string{"Technology", "Education"},
			Platforms:           []string{"YouTube", "LinkedIn"},
			AudienceGeo:         map[string]float64{"Bengaluru": 0.5, "Hyderabad": 0.2},
			AudienceAge:         map[string]float64{"18-24": 0.25, "25-34": 0.5},
			AvgViews:            95000,
			EngagementRate:      0.032,
			PastBrandCategories: []string{"EdTech", "Fintech"},
			ContentTone:         []string{"informative", "serious"},
			SafetyFlags:         map[string]bool{"adult": false},
			BasePriceINR:        60000,
		},
		{
			ID:                  "c3",
			Handle:              "@foodiesneha",
			Verticals:           []string{"Food", "Lifestyle"},
			Platforms:           []string{"Instagram", "Reels"},
			AudienceGeo:         map[string]float64{"Delhi": 0.6, "Mumbai": 0.25},
			AudienceAge:         map[string]float64{"18-24": 0.6, "25-34": 0.3},
			AvgViews:            150000,
			EngagementRate:      0.056,
			PastBrandCategories: []string{"Food", "Hospitality"},
			ContentTone:         []string{"fun", "casual"},
			SafetyFlags:         map[string]bool{"adult": false},
			BasePriceINR:        70000,
		},
	})
}
