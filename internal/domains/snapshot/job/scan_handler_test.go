package job

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotify-etl/internal/config"
	"spotify-etl/internal/shared"
)

type stubStore struct {
	keys    []string
	listErr error
}

func (s *stubStore) Upload(context.Context, string, []byte, string) error { return nil }
func (s *stubStore) Download(context.Context, string) ([]byte, error)     { return nil, nil }
func (s *stubStore) Move(context.Context, string, string) error           { return nil }

func (s *stubStore) List(_ context.Context, prefix string) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.keys, nil
}

type stubEnqueuer struct {
	keys    []string
	failKey string
}

func (s *stubEnqueuer) EnqueueTransform(_ context.Context, documentKey string) error {
	if documentKey == s.failKey {
		return errors.New("enqueue failed")
	}
	s.keys = append(s.keys, documentKey)
	return nil
}

func scanPipeline() config.PipelineConfig {
	return config.PipelineConfig{IntakePrefix: "to_be_processed/"}
}

func scanTask() *asynq.Task {
	return asynq.NewTask(shared.TypeScanIntake, nil)
}

func TestScanIntakeEnqueuesEveryDocument(t *testing.T) {
	store := &stubStore{keys: []string{
		"to_be_processed/doc1.json",
		"to_be_processed/doc2.json",
	}}
	enqueuer := &stubEnqueuer{}
	h := NewScanIntakeHandler(store, enqueuer, scanPipeline())

	err := h.ProcessTask(context.Background(), scanTask())
	require.NoError(t, err)
	assert.Equal(t, store.keys, enqueuer.keys)
}

func TestScanIntakeEmptyPrefix(t *testing.T) {
	h := NewScanIntakeHandler(&stubStore{}, &stubEnqueuer{}, scanPipeline())

	err := h.ProcessTask(context.Background(), scanTask())
	assert.NoError(t, err)
}

func TestScanIntakeContinuesPastEnqueueFailure(t *testing.T) {
	store := &stubStore{keys: []string{
		"to_be_processed/doc1.json",
		"to_be_processed/doc2.json",
		"to_be_processed/doc3.json",
	}}
	enqueuer := &stubEnqueuer{failKey: "to_be_processed/doc2.json"}
	h := NewScanIntakeHandler(store, enqueuer, scanPipeline())

	err := h.ProcessTask(context.Background(), scanTask())
	require.NoError(t, err)
	assert.Equal(t, []string{"to_be_processed/doc1.json", "to_be_processed/doc3.json"}, enqueuer.keys)
}

func TestScanIntakeListFailureRetries(t *testing.T) {
	store := &stubStore{listErr: errors.New("store unreachable")}
	h := NewScanIntakeHandler(store, &stubEnqueuer{}, scanPipeline())

	err := h.ProcessTask(context.Background(), scanTask())
	assert.Error(t, err)
}
