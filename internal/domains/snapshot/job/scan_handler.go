package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"spotify-etl/internal/config"
	"spotify-etl/internal/domains/snapshot/service"
)

// ScanIntakeHandler re-enqueues transforms for documents still sitting
// at the intake prefix. This is the at-least-once redelivery path:
// worker crashes, enqueue failures, and out-of-band uploads all end up
// here. "What's left to process" is always just the intake listing.
type ScanIntakeHandler struct {
	store    service.ObjectStore
	enqueuer service.TransformEnqueuer
	pipeline config.PipelineConfig
}

func NewScanIntakeHandler(store service.ObjectStore, enqueuer service.TransformEnqueuer, pipeline config.PipelineConfig) *ScanIntakeHandler {
	return &ScanIntakeHandler{
		store:    store,
		enqueuer: enqueuer,
		pipeline: pipeline,
	}
}

func (h *ScanIntakeHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	keys, err := h.store.List(ctx, h.pipeline.IntakePrefix)
	if err != nil {
		return fmt.Errorf("list intake: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	enqueued := 0
	for _, key := range keys {
		if err := h.enqueuer.EnqueueTransform(ctx, key); err != nil {
			// Keep going; the next scan retries the rest.
			log.Error().Err(err).Str("document_key", key).Msg("Failed to enqueue transform during scan")
			continue
		}
		enqueued++
	}

	log.Info().
		Int("found", len(keys)).
		Int("enqueued", enqueued).
		Str("prefix", h.pipeline.IntakePrefix).
		Msg("Intake scan completed")

	return nil
}
