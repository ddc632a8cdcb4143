// internal/matching/score.go
package matching

import (
	"math"
	"strconv"
	"strings"
)

// referenceEngagementRate is the engagement rate treated as "excellent";
// anything at or above it earns the full engagement component.
const referenceEngagementRate = 0.05

// Overlap returns |brandLabels ∩ creatorLabels| / |brandLabels|. The
// intersection counts distinct labels, the denominator counts the raw input
// list. An empty brand list scores 0 rather than dividing by zero. Labels
// are compared case-sensitively, no normalization.
func Overlap(brandLabels, creatorLabels []string) float64 {
	if len(brandLabels) == 0 {
		return 0.0
	}

	creatorSet := make(map[string]struct{}, len(creatorLabels))
	for _, l := range creatorLabels {
		creatorSet[l] = struct{}{}
	}

	matched := make(map[string]struct{})
	for _, l := range brandLabels {
		if _, ok := creatorSet[l]; ok {
			matched[l] = struct{}{}
		}
	}

	return float64(len(matched)) / float64(len(brandLabels))
}

// GeoScore sums the creator's audience fraction for every requested
// location, 0 for locations the creator has no audience in. Repeated input
// locations double-count, so the sum is unbounded above.
func GeoScore(locations []string, audienceGeo map[string]float64) float64 {
	score := 0.0
	for _, loc := range locations {
		score += audienceGeo[loc]
	}
	return score
}

// AgeScore sums the audience fractions of every age bucket that strictly
// overlaps the brand's target range. Buckets that merely touch the range
// boundary (e.g. "18-24" vs "24-34") contribute nothing. A malformed range
// string on either side fails soft: the score is 0 and the match proceeds.
func AgeScore(brandRange string, audienceAge map[string]float64) float64 {
	brandMin, brandMax, err := parseAgeRange(brandRange)
	if err != nil {
		return 0.0
	}

	total := 0.0
	for bucket, fraction := range audienceAge {
		bucketMin, bucketMax, err := parseAgeRange(bucket)
		if err != nil {
			continue
		}
		overlapMin := math.Max(float64(brandMin), float64(bucketMin))
		overlapMax := math.Min(float64(brandMax), float64(bucketMax))
		if overlapMax > overlapMin {
			total += fraction
		}
	}
	return total
}

// PerformanceScore blends budget headroom with engagement quality, each
// worth half. A creator priced above budget is hard-disqualified to 0
// regardless of engagement.
func PerformanceScore(budget, creatorPrice, engagementRate float64) float64 {
	if creatorPrice > budget {
		return 0.0
	}
	budgetFit := 1 - creatorPrice/budget
	erComponent := math.Min(engagementRate/referenceEngagementRate, 1.0)
	return budgetFit*0.5 + erComponent*0.5
}

func parseAgeRange(s string) (int, int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, strconv.ErrSyntax
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return min, max, nil
}
