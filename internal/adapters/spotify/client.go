// Package spotify is the track search adapter for the Spotify Web API.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
	"github.com/charanteja2729/mood-based-song-recommender/internal/core/ports"
)

// DefaultBaseURL is the production Spotify Web API root.
const DefaultBaseURL = "https://api.spotify.com/v1"

// defaultMarket is the region code every search targets.
const defaultMarket = "IN"

// Client is an HTTP client for the Spotify search adapter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	market     string
	cache      *QueryCache
}

// compile-time interface assertion
var _ ports.TrackProvider = (*Client)(nil)

// NewClient constructs a Spotify search client. The httpClient is expected
// to carry authentication (see ClientCredentials); pass nil to use the
// default client, e.g. against a test server.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		market:     defaultMarket,
	}
}

// WithCache attaches a redis-backed query cache. Cache errors are logged
// and fall through to a live provider call.
func (c *Client) WithCache(cache *QueryCache) *Client {
	c.cache = cache
	return c
}

// SearchTracks runs a keyword track search and returns shaped domain tracks
// in the provider's order. A provider failure is returned as-is: there is no
// retry, the caller decides whether to try again.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	if c.cache != nil {
		if tracks, ok := c.cache.get(ctx, query, limit); ok {
			log.Printf("DEBUG spotify adapter: cache hit for query %q", query)
			return tracks, nil
		}
	}

	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}

	params := searchURL.Query()
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("market", c.market)
	searchURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify adapter: search status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("spotify adapter: search decode error: %w", err)
	}

	tracks, err := mapSearchToDomain(body.Tracks.Items)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.put(ctx, query, limit, tracks)
	}

	return tracks, nil
}
