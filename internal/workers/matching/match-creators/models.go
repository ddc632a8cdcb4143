// internal/workers/matching/match-creators/models.go
package matchcreators

import "github.com/Komalkasat09/Content-creator-matching/internal/models"

type Input struct {
	Brief models.BrandBrief `json:"brief"`
}

type Output struct {
	MatchID string                 `json:"matchId"`
	Matches []models.ScoredCreator `json:"matches"`
}
