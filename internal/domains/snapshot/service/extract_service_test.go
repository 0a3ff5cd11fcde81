package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	payload    []byte
	err        error
	playlistID string
}

func (f *fakeCatalog) PlaylistSnapshot(_ context.Context, playlistID string) ([]byte, error) {
	f.playlistID = playlistID
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

type fakeEnqueuer struct {
	keys []string
	err  error
}

func (f *fakeEnqueuer) EnqueueTransform(_ context.Context, documentKey string) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, documentKey)
	return nil
}

func TestExtractDepositsVerbatimAndEnqueues(t *testing.T) {
	raw := []byte(scenarioDoc)
	catalog := &fakeCatalog{payload: raw}
	store := newFakeStore()
	enqueuer := &fakeEnqueuer{}

	pipeline := testPipeline()
	pipeline.DefaultPlaylistID = "default-playlist"
	svc := NewExtractService(catalog, store, enqueuer, pipeline)

	key, err := svc.Extract(context.Background(), "37i9dQZEVXbMDoHDwVN2tF")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "to_be_processed/spotify_raw_"))
	assert.True(t, strings.HasSuffix(key, ".json"))
	assert.Equal(t, "37i9dQZEVXbMDoHDwVN2tF", catalog.playlistID)

	// Raw bytes stored unmodified.
	assert.Equal(t, raw, store.objects[key])
	assert.Equal(t, []string{key}, enqueuer.keys)
}

func TestExtractDefaultsPlaylistID(t *testing.T) {
	catalog := &fakeCatalog{payload: []byte(`{"items": []}`)}
	pipeline := testPipeline()
	pipeline.DefaultPlaylistID = "6UeSakyzhiEt4NB3UAd6NQ"
	svc := NewExtractService(catalog, newFakeStore(), &fakeEnqueuer{}, pipeline)

	_, err := svc.Extract(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "6UeSakyzhiEt4NB3UAd6NQ", catalog.playlistID)
}

func TestExtractFetchFailureDepositsNothing(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("rate limited")}
	store := newFakeStore()
	enqueuer := &fakeEnqueuer{}
	svc := NewExtractService(catalog, store, enqueuer, testPipeline())

	_, err := svc.Extract(context.Background(), "")
	assert.Error(t, err)
	assert.Empty(t, store.objects)
	assert.Empty(t, enqueuer.keys)
}

func TestExtractSurvivesEnqueueFailure(t *testing.T) {
	// The deposit is durable; the intake scan recovers the task.
	catalog := &fakeCatalog{payload: []byte(`{"items": []}`)}
	store := newFakeStore()
	enqueuer := &fakeEnqueuer{err: errors.New("redis down")}
	svc := NewExtractService(catalog, store, enqueuer, testPipeline())

	key, err := svc.Extract(context.Background(), "")
	require.NoError(t, err)
	assert.Contains(t, store.objects, key)
}
