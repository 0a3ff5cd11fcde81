package queue

import (
	"encoding/json"
	"time"

	"spotify-etl/internal/config"
	"spotify-etl/internal/shared"
	"spotify-etl/pkg/logger"

	"github.com/hibiken/asynq"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	pipeline  config.PipelineConfig
}

func NewScheduler(redisAddress string, pipeline config.PipelineConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		pipeline:  pipeline,
	}
}

func (s *Scheduler) RegisterPipelineJobs() error {
	return s.registerScanIntakeJob()
}

// ================================================
// JOB: Re-scan intake prefix (default every 5 minutes)
// ================================================
// The extract endpoint enqueues a transform task as it deposits each
// document. The scan picks up whatever that path missed: documents
// stranded by a worker crash, manual retries, uploads made out-of-band.
// Task-id dedup makes the overlap with direct enqueues harmless.
func (s *Scheduler) registerScanIntakeJob() error {
	payload, err := json.Marshal(shared.ScanIntakePayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeScanIntake, payload)

	_, err = s.scheduler.Register(
		s.pipeline.ScanCron,
		task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(1),
		asynq.Timeout(time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register ScanIntake job", err)
		return err
	}

	logger.Info("✓ Registered ScanIntake", map[string]interface{}{
		"cron":   s.pipeline.ScanCron,
		"prefix": s.pipeline.IntakePrefix,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
