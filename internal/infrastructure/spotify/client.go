// Spotify Web API client for the extract stage.
//
// Uses the client-credentials flow; public playlist reads need no user
// consent. Endpoint shapes per
// https://developer.spotify.com/documentation/web-api/reference/
package spotify

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"spotify-etl/internal/config"

	"golang.org/x/oauth2/clientcredentials"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

// Client fetches playlist snapshots from the Spotify Web API.
type Client struct {
	httpClient *http.Client
	configured bool
}

// NewClient builds a client with an auto-refreshing app token.
// Missing credentials are reported per request, not at construction,
// so the API can start and answer health checks without them.
func NewClient(cfg config.SpotifyConfig) *Client {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return &Client{}
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyTokenURL,
	}

	return &Client{
		httpClient: creds.Client(context.Background()),
		configured: true,
	}
}

// PlaylistSnapshot returns one page of a playlist's tracks as the API
// sent them. The body is passed through verbatim — the raw document in
// the intake location is byte-for-byte what Spotify answered.
func (c *Client) PlaylistSnapshot(ctx context.Context, playlistID string) ([]byte, error) {
	if !c.configured {
		return nil, fmt.Errorf("spotify API credentials not configured")
	}

	url := fmt.Sprintf("%s/playlists/%s/tracks", spotifyBaseURL, playlistID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch playlist %s: %w", playlistID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify API returned %d for playlist %s: %s", resp.StatusCode, playlistID, string(body))
	}

	return body, nil
}
