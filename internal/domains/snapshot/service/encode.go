package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"spotify-etl/internal/domains/snapshot/model"
)

// Fixed CSV headers, one per row kind. Column order is part of the
// artifact contract consumed downstream.
var (
	songHeader   = []string{"song_id", "name", "duration_ms", "url", "popularity", "added_date", "album_id", "artist_id"}
	artistHeader = []string{"artist_id", "name", "url"}
	albumHeader  = []string{"album_id", "name", "release_date", "total_tracks", "url"}
)

// EncodeSongs renders the song rows as UTF-8 CSV with a header line.
// csv.Writer quotes embedded delimiters and newlines, which covers the
// track/album names the attribute set cannot guarantee clean.
func EncodeSongs(rows []model.SongRow) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.SongID,
			r.Name,
			strconv.Itoa(r.DurationMS),
			r.URL,
			strconv.Itoa(r.Popularity),
			r.AddedDate,
			r.AlbumID,
			r.ArtistID,
		})
	}
	return encode(songHeader, records)
}

// EncodeArtists renders the artist rows as UTF-8 CSV with a header line.
func EncodeArtists(rows []model.ArtistRow) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.ArtistID, r.Name, r.URL})
	}
	return encode(artistHeader, records)
}

// EncodeAlbums renders the album rows as UTF-8 CSV with a header line.
func EncodeAlbums(rows []model.AlbumRow) ([]byte, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.AlbumID,
			r.Name,
			r.ReleaseDate,
			strconv.Itoa(r.TotalTracks),
			r.URL,
		})
	}
	return encode(albumHeader, records)
}

func encode(header []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrEncoding, err)
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrEncoding, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrEncoding, err)
	}

	return buf.Bytes(), nil
}
