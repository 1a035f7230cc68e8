package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskReportWarmup rebuilds the cached inventory report.
	TaskReportWarmup = "reports:warmup"

	// warmupDelay coalesces bursts of writes into one warmup.
	warmupDelay = 2 * time.Second
)

// ReportWarmupPayload records what asked for the warmup.
type ReportWarmupPayload struct {
	Reason string `json:"reason"`
}

// NewReportWarmupTask constructs a warmup task.
func NewReportWarmupTask(reason string) (*asynq.Task, error) {
	data, err := json.Marshal(ReportWarmupPayload{Reason: reason})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportWarmup, data), nil
}
