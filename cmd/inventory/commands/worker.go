package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/odyssey-erp/inventory-api/internal/app"
	jobmetrics "github.com/odyssey-erp/inventory-api/internal/jobs"
	"github.com/odyssey-erp/inventory-api/jobs"
)

func newWorkerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the background job worker",
		Long: `Process queued jobs and keep the inventory report cache warm.
Requires REDIS_ADDR. REPORT_WARMUP_CRON sets the periodic warmup schedule;
an empty value disables it and only write-triggered warmups run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorker(cmd.Context())
		},
	}
}

func runWorker(ctx context.Context) error {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.RedisAddr == "" {
		return errors.New("worker: REDIS_ADDR must be provided")
	}
	logger := app.NewLogger(cfg)

	container, err := app.Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer container.Close()

	redisOpts, err := jobs.RedisOpt(cfg.RedisAddr)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	warmup := jobs.NewReportWarmupJob(container.Services.Reports, logger, jobmetrics.NewMetrics(registry))
	var cron []jobs.CronRegistration
	if cfg.ReportWarmupCron != "" {
		task, err := jobs.NewReportWarmupTask("cron")
		if err != nil {
			return err
		}
		cron = append(cron, jobs.CronRegistration{
			Spec:    cfg.ReportWarmupCron,
			Task:    task,
			Options: []asynq.Option{asynq.MaxRetry(3)},
		})
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts:   redisOpts,
		Logger:      logger,
		Concurrency: cfg.WorkerConcurrency,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskReportWarmup, Handler: warmup.Handle},
		},
		Cron: cron,
	})
	if err != nil {
		return err
	}

	if cfg.WorkerMetricsAddr != "" {
		server := newWorkerMetricsServer(cfg.WorkerMetricsAddr, registry)
		go func() {
			logger.Info("serving worker metrics", slog.String("addr", cfg.WorkerMetricsAddr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("worker metrics server", slog.Any("error", err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker run", slog.Any("error", err))
		return err
	}
	return nil
}

func newWorkerMetricsServer(addr string, gatherer prometheus.Gatherer) *http.Server {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
}
