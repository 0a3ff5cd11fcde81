package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"spotify-etl/internal/domains/snapshot/model"
	"spotify-etl/internal/domains/snapshot/service"
	"spotify-etl/internal/shared"
)

// TransformHandler processes snapshot:transform tasks — one raw
// document each. The handler owns no retry policy of its own: it maps
// failure kinds onto asynq's redelivery semantics and returns.
type TransformHandler struct {
	transformService service.TransformService
}

func NewTransformHandler(transformService service.TransformService) *TransformHandler {
	return &TransformHandler{
		transformService: transformService,
	}
}

// ProcessTask runs the transformer for the document named in the
// payload. Malformed documents and encoding failures are surfaced to
// the operator and marked SkipRetry — redelivering the same bytes can
// only fail the same way. Write and relocation failures return as
// plain errors so asynq retries the whole unit.
func (h *TransformHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.TransformSnapshotPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal TransformSnapshot payload")
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	log.Info().
		Str("document_key", payload.DocumentKey).
		Msg("Transforming snapshot document")

	err := h.transformService.Process(ctx, payload.DocumentKey)
	if err == nil {
		return nil
	}

	if errors.Is(err, model.ErrMalformedDocument) || errors.Is(err, model.ErrEncoding) {
		log.Error().
			Err(err).
			Str("document_key", payload.DocumentKey).
			Msg("Snapshot document rejected, leaving at intake for operator")
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	log.Error().
		Err(err).
		Str("document_key", payload.DocumentKey).
		Msg("Transform failed, will retry")
	return fmt.Errorf("transform %s: %w", payload.DocumentKey, err)
}
