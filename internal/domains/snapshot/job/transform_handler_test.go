package job

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotify-etl/internal/domains/snapshot/model"
	"spotify-etl/internal/shared"
)

type stubTransformService struct {
	err  error
	keys []string
}

func (s *stubTransformService) Process(_ context.Context, documentKey string) error {
	s.keys = append(s.keys, documentKey)
	return s.err
}

func transformTask(t *testing.T, documentKey string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(shared.TransformSnapshotPayload{DocumentKey: documentKey})
	require.NoError(t, err)
	return asynq.NewTask(shared.TypeTransformSnapshot, payload)
}

func TestTransformHandlerSuccess(t *testing.T) {
	svc := &stubTransformService{}
	h := NewTransformHandler(svc)

	err := h.ProcessTask(context.Background(), transformTask(t, "to_be_processed/doc1.json"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"to_be_processed/doc1.json"}, svc.keys)
}

func TestTransformHandlerMalformedDocumentSkipsRetry(t *testing.T) {
	svc := &stubTransformService{err: fmt.Errorf("%w: bad json", model.ErrMalformedDocument)}
	h := NewTransformHandler(svc)

	err := h.ProcessTask(context.Background(), transformTask(t, "to_be_processed/doc1.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestTransformHandlerEncodingFailureSkipsRetry(t *testing.T) {
	svc := &stubTransformService{err: fmt.Errorf("%w: broken writer", model.ErrEncoding)}
	h := NewTransformHandler(svc)

	err := h.ProcessTask(context.Background(), transformTask(t, "to_be_processed/doc1.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestTransformHandlerWriteFailureRetries(t *testing.T) {
	svc := &stubTransformService{err: fmt.Errorf("%w: connection reset", model.ErrPartialWrite)}
	h := NewTransformHandler(svc)

	err := h.ProcessTask(context.Background(), transformTask(t, "to_be_processed/doc1.json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestTransformHandlerRelocationFailureRetries(t *testing.T) {
	svc := &stubTransformService{err: fmt.Errorf("%w: copy failed", model.ErrRelocation)}
	h := NewTransformHandler(svc)

	err := h.ProcessTask(context.Background(), transformTask(t, "to_be_processed/doc1.json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestTransformHandlerBadPayloadSkipsRetry(t *testing.T) {
	svc := &stubTransformService{}
	h := NewTransformHandler(svc)

	task := asynq.NewTask(shared.TypeTransformSnapshot, []byte("not json"))
	err := h.ProcessTask(context.Background(), task)
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, svc.keys)
}
