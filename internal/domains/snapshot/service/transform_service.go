package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"spotify-etl/internal/config"
	"spotify-etl/internal/domains/snapshot/model"
	"spotify-etl/internal/infrastructure/storage"
)

type transformService struct {
	store    ObjectStore
	pipeline config.PipelineConfig
}

// NewTransformService builds the CORE transformer. It carries no
// mutable state; invocations for different documents may run
// concurrently.
func NewTransformService(store ObjectStore, pipeline config.PipelineConfig) TransformService {
	return &transformService{
		store:    store,
		pipeline: pipeline,
	}
}

// Process runs the whole unit of work for one snapshot document:
// read from intake, transform, encode, write the three artifacts, then
// relocate the source to the done location. The move is last — it is
// the single act that marks the document consumed, so any earlier
// failure leaves the document at intake and the whole unit retriable.
func (s *transformService) Process(ctx context.Context, documentKey string) error {
	raw, err := s.store.Download(ctx, documentKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			// Redelivery after a completed run: the source was already
			// moved. Nothing to do.
			log.Info().
				Str("document_key", documentKey).
				Msg("Document gone from intake, treating as already processed")
			return nil
		}
		return fmt.Errorf("read document %s: %w", documentKey, err)
	}

	rows, err := Transform(raw)
	if err != nil {
		return err
	}

	artifacts, err := s.encodeAll(rows, documentKey)
	if err != nil {
		return err
	}

	if err := s.commit(ctx, documentKey, artifacts); err != nil {
		return err
	}

	log.Info().
		Str("document_key", documentKey).
		Int("songs", len(rows.Songs)).
		Int("artists", len(rows.Artists)).
		Int("albums", len(rows.Albums)).
		Str("song_artifact", artifacts.SongKey).
		Str("album_artifact", artifacts.AlbumKey).
		Str("artist_artifact", artifacts.ArtistKey).
		Msg("Snapshot document transformed")

	return nil
}

func (s *transformService) encodeAll(rows *model.RowSet, documentKey string) (*Artifacts, error) {
	songKey, albumKey, artistKey := artifactKeys(s.pipeline, documentKey)

	songs, err := EncodeSongs(rows.Songs)
	if err != nil {
		return nil, err
	}
	albums, err := EncodeAlbums(rows.Albums)
	if err != nil {
		return nil, err
	}
	artists, err := EncodeArtists(rows.Artists)
	if err != nil {
		return nil, err
	}

	return &Artifacts{
		SongKey:   songKey,
		AlbumKey:  albumKey,
		ArtistKey: artistKey,
		Songs:     songs,
		Albums:    albums,
		Artists:   artists,
	}, nil
}

// commit writes all three artifacts, then moves the source document out
// of intake. The move-last ordering is the sole correctness mechanism
// standing in for a transaction: a failed upload leaves the source at
// intake untouched (ErrPartialWrite), a failed move leaves artifacts
// in place that a retry harmlessly overwrites (ErrRelocation).
func (s *transformService) commit(ctx context.Context, documentKey string, artifacts *Artifacts) error {
	uploads := []struct {
		key  string
		data []byte
	}{
		{artifacts.SongKey, artifacts.Songs},
		{artifacts.AlbumKey, artifacts.Albums},
		{artifacts.ArtistKey, artifacts.Artists},
	}

	for _, u := range uploads {
		if err := s.store.Upload(ctx, u.key, u.data, storage.ContentTypeCSV); err != nil {
			return fmt.Errorf("%w: %s: %v", model.ErrPartialWrite, u.key, err)
		}
	}

	target := doneKey(s.pipeline, documentKey)
	if err := s.store.Move(ctx, documentKey, target); err != nil {
		return fmt.Errorf("%w: %s -> %s: %v", model.ErrRelocation, documentKey, target, err)
	}

	return nil
}
