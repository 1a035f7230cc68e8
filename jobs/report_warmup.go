package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/odyssey-erp/inventory-api/internal/jobs"
	"github.com/odyssey-erp/inventory-api/internal/reports"
)

// ReportSource produces the inventory report, filling the cache on a miss.
type ReportSource interface {
	GetInventoryReport(ctx context.Context) ([]reports.Row, error)
}

// ReportWarmupJob pre-populates the report cache so the next reader hits it.
type ReportWarmupJob struct {
	Reports ReportSource
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
	timeout time.Duration
}

// NewReportWarmupJob wires dependencies for the warmup handler.
func NewReportWarmupJob(source ReportSource, logger *slog.Logger, metrics *jobmetrics.Metrics) *ReportWarmupJob {
	return &ReportWarmupJob{Reports: source, Logger: logger, Metrics: metrics, timeout: 20 * time.Second}
}

// Handle processes report warmup tasks.
func (j *ReportWarmupJob) Handle(ctx context.Context, t *asynq.Task) (resultErr error) {
	if j == nil || j.Reports == nil {
		return errors.New("report warmup: handler not configured")
	}
	var payload ReportWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	tracker := j.Metrics.Track(TaskReportWarmup)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	logger := j.logger().With(slog.String("reason", payload.Reason))
	start := time.Now()

	runCtx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	rows, err := j.Reports.GetInventoryReport(runCtx)
	switch {
	case errors.Is(err, reports.ErrNoReportData):
		j.Metrics.SetReportRows(0)
		logger.Info("report warmup found no data")
		return nil
	case err != nil:
		logger.Error("report warmup", slog.Any("error", err))
		return err
	}

	j.Metrics.SetReportRows(len(rows))
	logger.Info("completed report warmup", slog.Int("rows", len(rows)), slog.Duration("duration", time.Since(start)))
	return nil
}

func (j *ReportWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskReportWarmup))
	}
	return slog.Default().With(slog.String("job", TaskReportWarmup))
}
