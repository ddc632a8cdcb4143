// internal/gateway/server.go
package gateway

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Komalkasat09/Content-creator-matching/internal/catalog"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/config"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/logger"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/metrics"
	"github.com/Komalkasat09/Content-creator-matching/internal/matching"
	"github.com/Komalkasat09/Content-creator-matching/internal/models"
	"github.com/Komalkasat09/Content-creator-matching/internal/validation"
)

// Server exposes the matching and validation operations over HTTP,
// alongside the Zeebe workers. Browsers from the configured origins
// talk to this surface directly.
type Server struct {
	router  *gin.Engine
	catalog catalog.Repository
	logger  logger.Logger
	config  config.GatewayConfig
}

type matchResponse struct {
	MatchID string                 `json:"matchId"`
	Matches []models.ScoredCreator `json:"matches"`
}

type validateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewServer(cfg config.GatewayConfig, repo catalog.Repository, log logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:  router,
		catalog: repo,
		logger:  log.WithFields(map[string]interface{}{"component": "gateway"}),
		config:  cfg,
	}

	router.Use(s.corsMiddleware())

	router.GET("/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/match", s.handleMatch)
		api.POST("/billing/validate", s.handleValidateBilling)
		api.POST("/payout/validate", s.handleValidatePayout)
	}

	return s
}

// Router returns the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run blocks serving HTTP until the listener fails.
func (s *Server) Run() error {
	s.logger.Info("gateway listening", map[string]interface{}{
		"address": s.config.Address,
	})
	return s.router.Run(s.config.Address)
}

// corsMiddleware allows only the configured browser origins. Requests
// without an Origin header (curl, server-to-server) pass through.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	allowed := make(map[string]bool, len(s.config.AllowedOrigins))
	for _, origin := range s.config.AllowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleMatch(c *gin.Context) {
	var brief models.BrandBrief
	if err := c.ShouldBindJSON(&brief); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid brand brief."})
		return
	}
	if brief.Category == "" || brief.Budget <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid brand brief."})
		return
	}

	creators, err := s.catalog.All(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("catalog query failed", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Catalog unavailable."})
		return
	}

	matches := matching.Match(brief, creators)
	metrics.MatchRequestCandidates.WithLabelValues("gateway").Observe(float64(len(creators)))

	c.JSON(http.StatusOK, matchResponse{
		MatchID: uuid.NewString(),
		Matches: matches,
	})
}

func (s *Server) handleValidateBilling(c *gin.Context) {
	var rec models.BillingRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}

	if err := validation.ValidateBilling(rec); err != nil {
		s.rejectValidation(c, "billing", err)
		return
	}

	c.JSON(http.StatusOK, validateResponse{
		Status:  "success",
		Message: "Brand details are valid.",
	})
}

func (s *Server) handleValidatePayout(c *gin.Context) {
	var rec models.PayoutRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}

	if err := validation.ValidatePayout(rec); err != nil {
		s.rejectValidation(c, "payout", err)
		return
	}

	c.JSON(http.StatusOK, validateResponse{
		Status:  "success",
		Message: "Creator details are valid.",
	})
}

func (s *Server) rejectValidation(c *gin.Context, recordType string, err error) {
	detail := err.Error()
	var fieldErr *validation.FieldError
	if stderrors.As(err, &fieldErr) {
		detail = fieldErr.Detail
		metrics.ValidationFailures.WithLabelValues(recordType, fieldErr.Field).Inc()
	}
	c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
}
