// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Komalkasat09/Content-creator-matching/internal/catalog"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/camunda"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/config"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/database"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/logger"
	"github.com/Komalkasat09/Content-creator-matching/internal/common/observability"
	"github.com/Komalkasat09/Content-creator-matching/internal/gateway"
	"github.com/Komalkasat09/Content-creator-matching/pkg/registry"

	vb "github.com/Komalkasat09/Content-creator-matching/internal/workers/billing/validate-billing"
	mc "github.com/Komalkasat09/Content-creator-matching/internal/workers/matching/match-creators"
	vp "github.com/Komalkasat09/Content-creator-matching/internal/workers/payout/validate-payout"
)

const activityRegistryPath = "configs/activity-registry.json"

func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("config load failed: %v", err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	tracing, err := observability.NewTracing(cfg.App.Name, cfg.Observability.JaegerEndpoint)
	if err != nil {
		zapLog.Fatal("tracing setup failed", zap.Error(err))
	}
	defer tracing.Shutdown()

	ctx := context.Background()

	// --- Load catalog (read once, immutable for the process lifetime) ---
	spanCtx, span := tracing.StartSpan(ctx, "catalog.provision")
	repo, err := provisionCatalog(spanCtx, cfg, zapLog)
	span.End()
	if err != nil {
		zapLog.Fatal("catalog provisioning failed", zap.Error(err))
	}
	zapLog.Info("Catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("creators", repo.Len()),
	)

	// --- Activity registry sanity check ---
	if reg, err := registry.LoadRegistry(activityRegistryPath); err != nil {
		zapLog.Warn("activity registry not loaded", zap.Error(err))
	} else {
		for _, taskType := range []string{mc.TaskType, vb.TaskType, vp.TaskType} {
			if _, err := reg.FindByTaskType(taskType); err != nil {
				zapLog.Warn("task type missing from activity registry", zap.String("taskType", taskType))
			}
		}
		zapLog.Info("Activity registry loaded",
			zap.String("version", reg.Version),
			zap.Int("activities", len(reg.Activities)),
		)
	}

	// --- Init Zeebe Client with retry ---
	var zeebeClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = camunda.NewClient(cfg.Camunda.BrokerAddress)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	defer zeebeClient.Close()
	zapLog.Info("Zeebe client connected successfully")

	// --- Register Workers ---
	var workers []*camunda.CamundaWorker

	if wcfg := config.GetWorkerConfig(cfg, mc.TaskType); wcfg.Enabled {
		handler := mc.NewHandler(
			&mc.Config{
				Timeout: config.GetDuration(wcfg.Timeout),
				MaxJobs: wcfg.MaxJobsActive,
			},
			repo, log, obs,
		)
		workers = append(workers, startWorker(zeebeClient, mc.TaskType, wcfg, handler, zapLog))
	}

	if wcfg := config.GetWorkerConfig(cfg, vb.TaskType); wcfg.Enabled {
		handler := vb.NewHandler(
			&vb.Config{
				Timeout: config.GetDuration(wcfg.Timeout),
				MaxJobs: wcfg.MaxJobsActive,
			},
			log,
		)
		workers = append(workers, startWorker(zeebeClient, vb.TaskType, wcfg, handler, zapLog))
	}

	if wcfg := config.GetWorkerConfig(cfg, vp.TaskType); wcfg.Enabled {
		handler := vp.NewHandler(
			&vp.Config{
				Timeout: config.GetDuration(wcfg.Timeout),
				MaxJobs: wcfg.MaxJobsActive,
			},
			log,
		)
		workers = append(workers, startWorker(zeebeClient, vp.TaskType, wcfg, handler, zapLog))
	}

	zapLog.Info("All workers registered successfully", zap.Int("count", len(workers)))

	// --- HTTP Gateway ---
	if cfg.Gateway.Enabled {
		gw := gateway.NewServer(cfg.Gateway, repo, log)
		go func() {
			if err := gw.Run(); err != nil {
				zapLog.Error("gateway server failed", zap.Error(err))
			}
		}()
	}

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			status := "healthy"
			code := http.StatusOK
			if err := zeebeClient.HealthCheck(r.Context()); err != nil {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
			w.WriteHeader(code)
			json.NewEncoder(w).Encode(map[string]string{
				"status": status,
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Observability.MetricsAddress))
		if err := http.ListenAndServe(cfg.Observability.MetricsAddress, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop(shutdownCtx)
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// provisionCatalog loads the creator catalog from the configured source.
// The catalog is read once at startup; match requests never touch the
// backing store directly.
func provisionCatalog(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (*catalog.Static, error) {
	switch cfg.Catalog.Source {
	case "", "fixture":
		return catalog.Fixture(), nil

	case "postgres":
		var pg *database.PostgresClient
		err := retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Catalog.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			return nil, err
		}
		defer pg.Close()
		return catalog.LoadFromPostgres(ctx, pg.GetDB())

	case "redis":
		var rdb *database.RedisClient
		err := retryWithBackoff(func() error {
			var err error
			rdb, err = database.NewRedis(cfg.Catalog.Redis)
			if err != nil {
				return err
			}
			return rdb.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			return nil, err
		}
		defer rdb.Close()
		return catalog.LoadFromRedis(ctx, rdb.GetClient(), cfg.Catalog.SnapshotKey)

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func startWorker(client *camunda.Client, taskType string, wcfg config.WorkerConfig, handler camunda.JobHandler, log *zap.Logger) *camunda.CamundaWorker {
	w := camunda.NewWorker(client.GetClient(), taskType, camunda.WorkerOptions{
		MaxJobsActive: wcfg.MaxJobsActive,
		Timeout:       config.GetDuration(wcfg.Timeout),
	}, handler, log)
	w.Start()
	return w
}
