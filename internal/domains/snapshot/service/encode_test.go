package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotify-etl/internal/domains/snapshot/model"
)

func TestEncodeSongsHeaderAndRow(t *testing.T) {
	data, err := EncodeSongs([]model.SongRow{
		{
			SongID:     "t1",
			Name:       "Song A",
			DurationMS: 200000,
			URL:        "https://open.spotify.com/track/t1",
			Popularity: 80,
			AddedDate:  "2023-06-01T00:00:00Z",
			AlbumID:    "al1",
			ArtistID:   "a1",
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "song_id,name,duration_ms,url,popularity,added_date,album_id,artist_id", lines[0])
	assert.Equal(t, "t1,Song A,200000,https://open.spotify.com/track/t1,80,2023-06-01T00:00:00Z,al1,a1", lines[1])
}

func TestEncodeArtistsHeaderAndRow(t *testing.T) {
	data, err := EncodeArtists([]model.ArtistRow{
		{ArtistID: "a1", Name: "Artist A", URL: "https://open.spotify.com/artist/a1"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "artist_id,name,url", lines[0])
	assert.Equal(t, "a1,Artist A,https://open.spotify.com/artist/a1", lines[1])
}

func TestEncodeAlbumsHeaderAndRow(t *testing.T) {
	data, err := EncodeAlbums([]model.AlbumRow{
		{AlbumID: "al1", Name: "Album A", ReleaseDate: "2023-01-01", TotalTracks: 10, URL: "https://open.spotify.com/album/al1"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "album_id,name,release_date,total_tracks,url", lines[0])
	assert.Equal(t, "al1,Album A,2023-01-01,10,https://open.spotify.com/album/al1", lines[1])
}

func TestEncodeEmptyRowsKeepsHeader(t *testing.T) {
	data, err := EncodeSongs(nil)
	require.NoError(t, err)
	assert.Equal(t, "song_id,name,duration_ms,url,popularity,added_date,album_id,artist_id\n", string(data))
}

func TestEncodeQuotesEmbeddedDelimiter(t *testing.T) {
	data, err := EncodeArtists([]model.ArtistRow{
		{ArtistID: "a1", Name: "Crosby, Stills & Nash", URL: "u"},
	})
	require.NoError(t, err)

	// The name round-trips intact through a CSV reader.
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Crosby, Stills & Nash", records[1][1])
}

func TestEncodeDeterministic(t *testing.T) {
	rows := []model.SongRow{{SongID: "t1", Name: "x"}, {SongID: "t2", Name: "y"}}

	first, err := EncodeSongs(rows)
	require.NoError(t, err)
	second, err := EncodeSongs(rows)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
