// internal/gateway/server_test.go
package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Komalkasat09/Content-creator-matching/internal/catalog"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/config"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/logger"
)

func newTestServer(t *testing.T) *Server {
	cfg := config.GatewayConfig{
		Enabled:        true,
		Address:        ":0",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	return NewServer(cfg, catalog.Fixture(), logger.NewTestLogger(t))
}

func doJSON(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestGateway_Health(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGateway_Match(t *testing.T) {
	s := newTestServer(t)

	body := `{
		"category": "Fitness",
		"budget": 100000,
		"locations": ["Mumbai"],
		"ageRange": "18-30",
		"tone": ["energetic"],
		"platforms": ["Instagram"]
	}`
	w := doJSON(s, http.MethodPost, "/api/match", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp matchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 3)
	assert.Equal(t, "@fitwithria", resp.Matches[0].Handle)
	assert.NotEmpty(t, resp.MatchID)
}

func TestGateway_Match_BadBody(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/match", "{not json")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "detail")
}

func TestGateway_Match_MissingCategory(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/match", `{"budget": 50000}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid brand brief.", resp["detail"])
}

func TestGateway_Match_ZeroBudget(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodPost, "/api/match", `{"category": "Fitness", "budget": 0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid brand brief.", resp["detail"])
}

func TestGateway_ValidateBilling(t *testing.T) {
	s := newTestServer(t)

	t.Run("valid", func(t *testing.T) {
		body := `{
			"company": "Acme Media",
			"gstin": "27AAPFU0939F1ZV",
			"address": "12 MG Road",
			"email": "finance@acmemedia.in",
			"phone": "+91-9876543210"
		}`
		w := doJSON(s, http.MethodPost, "/api/billing/validate", body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp validateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "Brand details are valid.", resp.Message)
	})

	t.Run("bad gstin", func(t *testing.T) {
		body := `{"company": "Acme", "gstin": "bad", "email": "finance@acmemedia.in"}`
		w := doJSON(s, http.MethodPost, "/api/billing/validate", body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid GSTIN format.", resp["detail"])
	})

	t.Run("bad email", func(t *testing.T) {
		body := `{"company": "Acme", "gstin": "27AAPFU0939F1ZV", "email": "nope"}`
		w := doJSON(s, http.MethodPost, "/api/billing/validate", body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid Email format.", resp["detail"])
	})
}

func TestGateway_ValidatePayout(t *testing.T) {
	s := newTestServer(t)

	t.Run("valid", func(t *testing.T) {
		body := `{"name": "Ria", "pan": "ABCDE1234F", "upi": "ria@okhdfc", "ifsc": "HDFC0001234"}`
		w := doJSON(s, http.MethodPost, "/api/payout/validate", body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp validateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Creator details are valid.", resp.Message)
	})

	t.Run("bad ifsc", func(t *testing.T) {
		body := `{"name": "Ria", "pan": "ABCDE1234F", "upi": "ria@okhdfc", "ifsc": "1234ABCD56"}`
		w := doJSON(s, http.MethodPost, "/api/payout/validate", body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid IFSC format.", resp["detail"])
	})
}

func TestGateway_CORS(t *testing.T) {
	s := newTestServer(t)

	t.Run("allowed origin echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		s.Router().ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		s.Router().ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/match", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		s.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
