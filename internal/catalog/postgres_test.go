// internal/catalog/postgres_test.go
package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var creatorColumns = []string{
	"id", "handle", "verticals", "platforms", "audience_geo", "audience_age",
	"avg_views", "engagement_rate", "past_brand_categories", "content_tone",
	"safety_flags", "base_price_inr",
}

func TestLoadFromPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(creatorColumns).
		AddRow(
			"c1", "@fitwithria",
			`{"Fitness","Lifestyle"}`, `{"Instagram","YouTube"}`,
			[]byte(`{"Mumbai": 0.42, "Delhi": 0.2}`),
			[]byte(`{"18-24": 0.55, "25-34": 0.35}`),
			int64(120000), 0.047,
			`{"Fashion","Wellness"}`, `{"energetic","fun"}`,
			[]byte(`{"adult": false}`),
			80000.0,
		).
		AddRow(
			"c2", "@techbyraj",
			`{"Technology","Education"}`, `{"YouTube","LinkedIn"}`,
			[]byte(`{"Bengaluru": 0.5}`),
			[]byte(`{"25-34": 0.5}`),
			int64(95000), 0.032,
			`{"EdTech"}`, `{"informative"}`,
			[]byte(`{"adult": false}`),
			60000.0,
		)

	mock.ExpectQuery("SELECT id, handle, verticals").WillReturnRows(rows)

	static, err := LoadFromPostgres(context.Background(), db)
	require.NoError(t, err)
	require.Equal(t, 2, static.Len())

	creators, err := static.All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "@fitwithria", creators[0].Handle)
	assert.Equal(t, []string{"Fitness", "Lifestyle"}, creators[0].Verticals)
	assert.InDelta(t, 0.42, creators[0].AudienceGeo["Mumbai"], 1e-9)
	assert.InDelta(t, 0.55, creators[0].AudienceAge["18-24"], 1e-9)
	assert.False(t, creators[0].SafetyFlags["adult"])
	assert.InDelta(t, 80000, creators[0].BasePriceINR, 1e-9)

	assert.Equal(t, "c2", creators[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadFromPostgres_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, handle, verticals").WillReturnError(assert.AnError)

	_, err = LoadFromPostgres(context.Background(), db)
	assert.Error(t, err)
}

func TestLoadFromPostgres_MalformedGeoJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(creatorColumns).
		AddRow(
			"c1", "@broken",
			`{}`, `{}`,
			[]byte(`not json`),
			[]byte(`{}`),
			int64(0), 0.0,
			`{}`, `{}`,
			[]byte(`{}`),
			0.0,
		)
	mock.ExpectQuery("SELECT id, handle, verticals").WillReturnRows(rows)

	_, err = LoadFromPostgres(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audience_geo")
}

func TestLoadFromPostgres_EmptyTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, handle, verticals").
		WillReturnRows(sqlmock.NewRows(creatorColumns))

	static, err := LoadFromPostgres(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 0, static.Len())
}
