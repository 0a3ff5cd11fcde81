package model

// Raw snapshot document shapes, matching the Spotify playlist-tracks
// payload. Absent sub-fields decode to zero values on purpose: the
// transform substitutes empty strings / zeros instead of failing on
// real-world payload variability.

// SnapshotDocument is one raw playlist-listing payload as retrieved
// from the catalog API. One document = one unit of work.
type SnapshotDocument struct {
	Items []PlaylistEntry `json:"items"`
}

// PlaylistEntry pairs an addition timestamp with an optional track.
// Track is nil for slots whose track was removed or is unavailable;
// such entries are skipped, not errors.
type PlaylistEntry struct {
	AddedAt string `json:"added_at"`
	Track   *Track `json:"track"`
}

type Track struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	DurationMS   int          `json:"duration_ms"`
	Popularity   int          `json:"popularity"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	Artists      []ArtistRef  `json:"artists"`
	Album        AlbumRef     `json:"album"`
}

type ArtistRef struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

type AlbumRef struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ReleaseDate  string       `json:"release_date"`
	TotalTracks  int          `json:"total_tracks"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// Normalized output rows. One row per source occurrence, in entry
// order — no deduplication, no sorting.

// SongRow keys the song to the first artist of the track's artist list.
// Secondary artists are intentionally not part of the song relation.
type SongRow struct {
	SongID     string
	Name       string
	DurationMS int
	URL        string
	Popularity int
	AddedDate  string
	AlbumID    string
	ArtistID   string
}

type ArtistRow struct {
	ArtistID string
	Name     string
	URL      string
}

type AlbumRow struct {
	AlbumID     string
	Name        string
	ReleaseDate string // passed through verbatim, not reparsed
	TotalTracks int
	URL         string
}

// RowSet is the three-way fan-out of one snapshot document. The three
// slices always have equal length: one row of each kind per entry with
// a present track.
type RowSet struct {
	Songs   []SongRow
	Artists []ArtistRow
	Albums  []AlbumRow
}
