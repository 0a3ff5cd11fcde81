package service

import (
	"path"
	"strings"

	"spotify-etl/internal/config"
)

// Stable sub-paths per row kind under the transformed root.
const (
	songDataDir   = "song_data/"
	albumDataDir  = "album_data/"
	artistDataDir = "artist_data/"
)

// artifactKeys derives the three artifact destinations from the source
// document key. Deterministic on purpose: reprocessing the same
// document overwrites the same files instead of duplicating them.
//
//	to_be_processed/spotify_raw_20230101.json
//	  -> transformed_data/song_data/spotify_raw_20230101_songs.csv
//	  -> transformed_data/album_data/spotify_raw_20230101_albums.csv
//	  -> transformed_data/artist_data/spotify_raw_20230101_artists.csv
func artifactKeys(pipeline config.PipelineConfig, documentKey string) (songKey, albumKey, artistKey string) {
	stem := documentStem(documentKey)
	songKey = pipeline.TransformedPrefix + songDataDir + stem + "_songs.csv"
	albumKey = pipeline.TransformedPrefix + albumDataDir + stem + "_albums.csv"
	artistKey = pipeline.TransformedPrefix + artistDataDir + stem + "_artists.csv"
	return songKey, albumKey, artistKey
}

// doneKey is where the source document lands once consumed.
func doneKey(pipeline config.PipelineConfig, documentKey string) string {
	return pipeline.DonePrefix + path.Base(documentKey)
}

func documentStem(documentKey string) string {
	base := path.Base(documentKey)
	return strings.TrimSuffix(base, path.Ext(base))
}
