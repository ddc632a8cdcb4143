// internal/models/creator.go
package models

// Creator is an immutable catalog entry. The catalog is loaded once at
// startup and shared read-only across all requests; nothing in the scoring
// path may mutate it.
type Creator struct {
	ID                  string             `json:"_id"`
	Handle              string             `json:"handle"`
	Verticals           []string           `json:"verticals"`
	Platforms           []string           `json:"platforms"`
	AudienceGeo         map[string]float64 `json:"audienceGeo"`
	AudienceAge         map[string]float64 `json:"audienceAge"`
	AvgViews            int64              `json:"avgViews"`
	EngagementRate      float64            `json:"engagementRate"`
	PastBrandCategories []string           `json:"pastBrandCategories"`
	ContentTone         []string           `json:"contentTone"`
	SafetyFlags         map[string]bool    `json:"safetyFlags"`
	BasePriceINR        float64            `json:"basePriceINR"`
}

// BrandBrief is the per-request matching input. It is constructed fresh per
// request and discarded after the response.
type BrandBrief struct {
	Category  string   `json:"category"`
	Budget    float64  `json:"budget"`
	Locations []string `json:"locations"`
	AgeRange  string   `json:"ageRange"` // "min-max", e.g. "18-30"
	Tone      []string `json:"tone"`
	Platforms []string `json:"platforms"`
}

// ScoredCreator pairs a catalog entry with its computed score and the
// human-readable reason tags, in evaluation order.
type ScoredCreator struct {
	Creator `json:"creator"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}
