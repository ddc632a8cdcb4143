// internal/workers/payout/validate-payout/handler.go
package validatepayout

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"github.com/Komalkasat09/Content-creator-matching/internal/common/errors"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/logger"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/metrics"
	"github.com/Komalkasat09/Content-creator-matching/internal/validation"
)

const (
	TaskType = "validate-payout"

	StatusSuccess  = "success"
	SuccessMessage = "Creator details are valid."
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", err.Error())
		return nil
	}

	output, err := h.execute(context.Background(), &input)
	if err != nil {
		var fieldErr *validation.FieldError
		if stderrors.As(err, &fieldErr) {
			metrics.ValidationFailures.WithLabelValues("payout", fieldErr.Field).Inc()
			h.failJob(client, job, string(errors.ErrCodeInvalidFormat), fieldErr.Detail)
			return nil
		}
		h.failJob(client, job, string(errors.ErrCodeInvalidFormat), err.Error())
		return nil
	}

	if err := h.completeJob(client, job, output); err != nil {
		return err
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	return nil
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if err := validation.ValidatePayout(input.Payout); err != nil {
		return nil, err
	}

	h.logger.Info("payout details valid", map[string]interface{}{
		"name": input.Payout.Name,
	})

	return &Output{
		Status:  StatusSuccess,
		Message: SuccessMessage,
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
