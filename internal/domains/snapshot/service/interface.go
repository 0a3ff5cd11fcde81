package service

import (
	"context"
)

// ObjectStore is the contract the pipeline needs from blob storage.
// Implemented by infrastructure/storage.MinIOStorage.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Move(ctx context.Context, fromKey, toKey string) error
}

// CatalogClient fetches one playlist snapshot as raw bytes.
// Implemented by infrastructure/spotify.Client.
type CatalogClient interface {
	PlaylistSnapshot(ctx context.Context, playlistID string) ([]byte, error)
}

// TransformEnqueuer schedules the transform of a deposited document.
// Implemented by infrastructure/queue.Client.
type TransformEnqueuer interface {
	EnqueueTransform(ctx context.Context, documentKey string) error
}

// TransformService turns one raw snapshot document into the three
// tabular artifacts and relocates the source once they are safely
// written.
type TransformService interface {
	// Process runs the full unit of work for the document at key:
	// read, transform, encode, commit. Failure kinds are the sentinel
	// errors in the model package.
	Process(ctx context.Context, documentKey string) error
}

// ExtractService fetches a playlist snapshot and deposits it at the
// intake location.
type ExtractService interface {
	// Extract returns the object-store key of the deposited document.
	Extract(ctx context.Context, playlistID string) (string, error)
}

// Artifacts holds the encoded tables of one document together with
// their destination keys.
type Artifacts struct {
	SongKey   string
	AlbumKey  string
	ArtistKey string

	Songs   []byte
	Albums  []byte
	Artists []byte
}
