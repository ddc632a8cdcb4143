// internal/workers/matching/match-creators/handler_test.go
package matchcreators

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Komalkasat09/Content-creator-matching/internal/catalog"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/logger"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/observability"
	"github.com/Komalkasat09/Content-creator-matching/internal/models"
)

func createTestConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
		MaxJobs: 5,
	}
}

func newTestHandler(t *testing.T, repo catalog.Repository) *Handler {
	return NewHandler(createTestConfig(), repo, logger.NewTestLogger(t), nil)
}

// failingRepo simulates a catalog whose backing source broke after startup.
type failingRepo struct{}

func (failingRepo) All(_ context.Context) ([]models.Creator, error) {
	return nil, assert.AnError
}

func TestHandler_Execute_RanksFixtureCatalog(t *testing.T) {
	h := newTestHandler(t, catalog.Fixture())

	input := &Input{
		Brief: models.BrandBrief{
			Category:  "Fitness",
			Budget:    100000,
			Locations: []string{"Mumbai"},
			AgeRange:  "18-30",
			Tone:      []string{"energetic"},
			Platforms: []string{"Instagram"},
		},
	}

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, output.Matches, 3)

	assert.Equal(t, "@fitwithria", output.Matches[0].Handle)
	assert.Equal(t, 81, output.Matches[0].Score)

	_, err = uuid.Parse(output.MatchID)
	assert.NoError(t, err, "matchId should be a UUID")
}

func TestHandler_Execute_RecordsTopScore(t *testing.T) {
	obs := observability.New("match-test")
	defer obs.Shutdown()

	h := NewHandler(createTestConfig(), catalog.Fixture(), logger.NewTestLogger(t), obs)

	output, err := h.Execute(context.Background(), &Input{
		Brief: models.BrandBrief{Category: "Fitness", Budget: 100000},
	})
	require.NoError(t, err)
	require.NotEmpty(t, output.Matches)
}

func TestHandler_Execute_EmptyCatalog(t *testing.T) {
	h := newTestHandler(t, catalog.NewStatic(nil))

	output, err := h.Execute(context.Background(), &Input{
		Brief: models.BrandBrief{Category: "Fitness", Budget: 1000},
	})
	require.NoError(t, err)
	assert.Empty(t, output.Matches)
	assert.NotEmpty(t, output.MatchID)
}

func TestHandler_Execute_CatalogFailure(t *testing.T) {
	h := newTestHandler(t, failingRepo{})

	_, err := h.Execute(context.Background(), &Input{
		Brief: models.BrandBrief{Category: "Fitness", Budget: 1000},
	})
	assert.Error(t, err)
}

func TestValidateBriefPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "complete brief",
			payload: `{"brief": {"category": "Fitness", "budget": 100000, "locations": ["Mumbai"], "ageRange": "18-30", "tone": ["energetic"], "platforms": ["Instagram"]}}`,
			wantErr: false,
		},
		{
			name:    "minimal brief",
			payload: `{"brief": {"category": "Fitness", "budget": 1}}`,
			wantErr: false,
		},
		{
			name:    "tone as bare string",
			payload: `{"brief": {"category": "Fitness", "budget": 100, "tone": "energetic"}}`,
			wantErr: true,
		},
		{
			name:    "zero budget",
			payload: `{"brief": {"category": "Fitness", "budget": 0}}`,
			wantErr: true,
		},
		{
			name:    "missing brief",
			payload: `{}`,
			wantErr: true,
		},
		{
			name:    "missing budget",
			payload: `{"brief": {"category": "Fitness"}}`,
			wantErr: true,
		},
		{
			name:    "budget as string",
			payload: `{"brief": {"category": "Fitness", "budget": "lots"}}`,
			wantErr: true,
		},
		{
			name:    "negative budget",
			payload: `{"brief": {"category": "Fitness", "budget": -5}}`,
			wantErr: true,
		},
		{
			name:    "empty category",
			payload: `{"brief": {"category": "", "budget": 100}}`,
			wantErr: true,
		},
		{
			name:    "locations not an array",
			payload: `{"brief": {"category": "Fitness", "budget": 100, "locations": "Mumbai"}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBriefPayload(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
