package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

// DefaultBaseURL is the FACEIT data API root
const DefaultBaseURL = "https://open.faceit.com/data/v4"

// Client is a Directory backed by the FACEIT data API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a FACEIT directory client.
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Ensure Client implements the interface
var _ Directory = (*Client)(nil)

// playerResponse is the subset of the FACEIT player payload the tracker uses
type playerResponse struct {
	PlayerID string `json:"player_id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Country  string `json:"country"`
}

// Lookup resolves a player handle via GET /players?nickname=<handle>
func (c *Client) Lookup(ctx context.Context, handle string) (*model.Profile, error) {
	reqURL := fmt.Sprintf("%s/players?nickname=%s", c.baseURL, url.QueryEscape(handle))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory lookup failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q", model.ErrProfileNotFound, handle)
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("directory lookup for %q: HTTP %d: %s", handle, resp.StatusCode, string(body))
	}

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("failed to parse directory response: %w", err)
	}

	// A body without a player id is as good as a miss
	if player.PlayerID == "" {
		return nil, fmt.Errorf("%w: %q", model.ErrProfileNotFound, handle)
	}

	return &model.Profile{
		ID:       model.PlayerID(player.PlayerID),
		Nickname: player.Nickname,
		Avatar:   player.Avatar,
		Country:  player.Country,
	}, nil
}
