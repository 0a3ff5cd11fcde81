package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"spotify-etl/internal/config"
	"spotify-etl/internal/infrastructure/storage"
)

type extractService struct {
	catalog  CatalogClient
	store    ObjectStore
	enqueuer TransformEnqueuer
	pipeline config.PipelineConfig
	now      func() time.Time
}

// NewExtractService wires the fetch stage: catalog fetch, deposit at
// intake, transform enqueue.
func NewExtractService(catalog CatalogClient, store ObjectStore, enqueuer TransformEnqueuer, pipeline config.PipelineConfig) ExtractService {
	return &extractService{
		catalog:  catalog,
		store:    store,
		enqueuer: enqueuer,
		pipeline: pipeline,
		now:      time.Now,
	}
}

// Extract fetches one playlist snapshot and deposits the raw bytes,
// unmodified, at the intake location. Returns the document key.
func (s *extractService) Extract(ctx context.Context, playlistID string) (string, error) {
	if playlistID == "" {
		playlistID = s.pipeline.DefaultPlaylistID
	}

	raw, err := s.catalog.PlaylistSnapshot(ctx, playlistID)
	if err != nil {
		return "", fmt.Errorf("fetch playlist snapshot: %w", err)
	}

	timestamp := s.now().UTC().Format("20060102150405")
	documentKey := fmt.Sprintf("%sspotify_raw_%s.json", s.pipeline.IntakePrefix, timestamp)

	if err := s.store.Upload(ctx, documentKey, raw, storage.ContentTypeJSON); err != nil {
		return "", fmt.Errorf("deposit document: %w", err)
	}

	// The deposit is durable even if the enqueue fails; the periodic
	// intake scan will pick the document up.
	if err := s.enqueuer.EnqueueTransform(ctx, documentKey); err != nil {
		log.Error().
			Err(err).
			Str("document_key", documentKey).
			Msg("Failed to enqueue transform, intake scan will recover")
	}

	log.Info().
		Str("playlist_id", playlistID).
		Str("document_key", documentKey).
		Int("bytes", len(raw)).
		Msg("Playlist snapshot deposited at intake")

	return documentKey, nil
}
