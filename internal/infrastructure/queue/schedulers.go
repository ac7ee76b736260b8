package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"catalog-backend/internal/shared"
	"catalog-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterJobs() error {
	return s.registerLowStockScanJob()
}

// ================================================
// JOB 1: Low Stock Scan (Hourly at minute 0)
// ================================================
// The scan is read-only, so runs are not fenced against each other: a
// delayed run overlapping the next one produces duplicate alerts at
// worst. MaxRetry is 0 because the next hourly run supersedes a failed
// one anyway.
func (s *Scheduler) registerLowStockScanJob() error {
	payload, err := json.Marshal(shared.LowStockScanPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeStockLowScan, payload)

	_, err = s.scheduler.Register(
		"0 * * * *", // Hourly at minute 0
		task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(0),
		asynq.Timeout(5*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register LowStockScan job", err)
		return err
	}

	logger.Info("✓ Registered LowStockScan: hourly at minute 0", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
