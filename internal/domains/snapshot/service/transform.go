package service

import (
	"encoding/json"
	"fmt"

	"spotify-etl/internal/domains/snapshot/model"
)

// Transform parses one raw snapshot document into the three normalized
// row sets. Pure function of the input bytes — no side effects, so a
// redelivered task can re-run it safely.
//
// Parsing is permissive below the top level: absent display/url fields
// become empty strings, absent numeric fields become zero. Only a
// document that fails to parse as an object with an items sequence is
// rejected.
func Transform(raw []byte) (*model.RowSet, error) {
	var doc model.SnapshotDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedDocument, err)
	}
	if doc.Items == nil {
		return nil, fmt.Errorf("%w: missing items sequence", model.ErrMalformedDocument)
	}

	rows := &model.RowSet{}
	for _, entry := range doc.Items {
		if entry.Track == nil {
			// Removed/unavailable track; skip the slot, keep going.
			continue
		}
		track := entry.Track

		// First artist is the song's join key; tracks without any
		// artist reference get empty-valued artist fields.
		var lead model.ArtistRef
		if len(track.Artists) > 0 {
			lead = track.Artists[0]
		}

		rows.Songs = append(rows.Songs, model.SongRow{
			SongID:     track.ID,
			Name:       track.Name,
			DurationMS: track.DurationMS,
			URL:        track.ExternalURLs.Spotify,
			Popularity: track.Popularity,
			AddedDate:  entry.AddedAt,
			AlbumID:    track.Album.ID,
			ArtistID:   lead.ID,
		})

		rows.Artists = append(rows.Artists, model.ArtistRow{
			ArtistID: lead.ID,
			Name:     lead.Name,
			URL:      lead.ExternalURLs.Spotify,
		})

		rows.Albums = append(rows.Albums, model.AlbumRow{
			AlbumID:     track.Album.ID,
			Name:        track.Album.Name,
			ReleaseDate: track.Album.ReleaseDate,
			TotalTracks: track.Album.TotalTracks,
			URL:         track.Album.ExternalURLs.Spotify,
		})
	}

	return rows, nil
}
