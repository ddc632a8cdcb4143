// internal/workers/matching/match-creators/handler.go
package matchcreators

import (
	"context"
	"encoding/json"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/Komalkasat09/Content-creator-matching/internal/catalog"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/errors"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/logger"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/metrics"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/observability"
	"github.com/Komalkasat09/Content-creator-matching/internal/matching"
)

const (
	TaskType = "match-creators"
)

type Handler struct {
	config   *Config
	catalog  catalog.Repository
	logger   logger.Logger
	errorHdl *errors.ErrorHandler
	obs      *observability.Observability
}

func NewHandler(config *Config, repo catalog.Repository, log logger.Logger, obs *observability.Observability) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:   config,
		catalog:  repo,
		logger:   scoped,
		errorHdl: errors.NewErrorHandler(scoped),
		obs:      obs,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	if err := validateBriefPayload(job.Variables); err != nil {
		h.failJob(client, job, string(errors.ErrCodeBriefValidationFailed), err.Error())
		return nil
	}

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, string(errors.ErrCodeBriefParseFailed), err.Error())
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.ErrCodeCatalogQueryFailed)).Inc()
		h.errorHdl.HandleJobError(ctx, client, job, errors.NewCatalogQueryFailedError(err))
		return nil
	}

	if err := h.completeJob(client, job, output); err != nil {
		return err
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	return nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	ctx, span := otel.Tracer(TaskType).Start(ctx, "match.execute")
	defer span.End()

	creators, err := h.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	matches := matching.Match(input.Brief, creators)
	if h.obs != nil && len(matches) > 0 {
		h.obs.RecordTopScore(ctx, matches[0].Score)
	}

	matchID := uuid.NewString()
	h.logger.Info("brief matched", map[string]interface{}{
		"matchId":    matchID,
		"category":   input.Brief.Category,
		"candidates": len(creators),
		"matches":    len(matches),
	})

	return &Output{
		MatchID: matchID,
		Matches: matches,
	}, nil
}

// Execute is exposed for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return err
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"error": err,
		})
		return err
	}
	return nil
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, _ = client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
}
