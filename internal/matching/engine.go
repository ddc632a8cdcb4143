// internal/matching/engine.go
package matching

import (
	"math"
	"sort"

	"github.com/Komalkasat09/Content-creator-matching/internal/models"
)

// Score bucket weights: relevance 40 + audience fit 30 + performance 20 +
// constraints 10 = 100 under normal inputs. The total is deliberately NOT
// clamped: geo score is unbounded when locations repeat or overlap, so a
// pathological brief can exceed 100.
const (
	relevanceWeight   = 40.0
	audienceWeight    = 30.0
	performanceWeight = 20.0
	constraintsPoints = 10.0
)

// Reason tags, appended in evaluation order. Any subset can apply.
const (
	ReasonAudienceFit   = "Audience Fit"
	ReasonToneMatch     = "Tone Match"
	ReasonCategoryMatch = "Category Match"
	ReasonGoodValue     = "Good Value"
)

// Match scores every catalog entry against the brief and returns the full
// list ranked by score descending. Ties keep the catalog's original relative
// order. Pure function: neither the brief nor the catalog is mutated, and
// every creator appears exactly once in the result.
func Match(brief models.BrandBrief, catalog []models.Creator) []models.ScoredCreator {
	scored := make([]models.ScoredCreator, 0, len(catalog))

	for _, creator := range catalog {
		categoryScore := 0.0
		if containsLabel(creator.PastBrandCategories, brief.Category) || containsLabel(creator.Verticals, brief.Category) {
			categoryScore = 1.0
		}
		toneScore := Overlap(brief.Tone, creator.ContentTone)
		platformScore := Overlap(brief.Platforms, creator.Platforms)
		relevance := (categoryScore*0.5 + toneScore*0.25 + platformScore*0.25) * relevanceWeight

		geo := GeoScore(brief.Locations, creator.AudienceGeo)
		age := AgeScore(brief.AgeRange, creator.AudienceAge)
		audienceFit := (geo*0.5 + age*0.5) * audienceWeight

		performance := PerformanceScore(brief.Budget, creator.BasePriceINR, creator.EngagementRate) * performanceWeight

		// Hard safety gate: an adult-flagged creator forfeits the whole
		// constraints bucket but still appears in the results, scored lower.
		constraints := constraintsPoints
		if creator.SafetyFlags["adult"] {
			constraints = 0
		}

		total := int(math.Round(relevance + audienceFit + performance + constraints))

		var reasons []string
		if geo > 0.4 {
			reasons = append(reasons, ReasonAudienceFit)
		}
		if toneScore > 0.4 {
			reasons = append(reasons, ReasonToneMatch)
		}
		if categoryScore > 0 {
			reasons = append(reasons, ReasonCategoryMatch)
		}
		if performance > 10 {
			reasons = append(reasons, ReasonGoodValue)
		}

		scored = append(scored, models.ScoredCreator{
			Creator: creator,
			Score:   total,
			Reasons: reasons,
		})
	}

	// Stable sort: equal scores must preserve catalog order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
