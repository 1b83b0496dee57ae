// Package rawg is a thin client for the RAWG video game catalog API,
// reshaping its search results into the subset the app renders.
package rawg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUnavailable is the single failure callers see; the underlying cause is
// wrapped into the error text for server-side logs but never reaches clients.
var ErrUnavailable = errors.New("catalog search unavailable")

const (
	DefaultBaseURL = "https://api.rawg.io/api"

	searchPageSize = 20
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a catalog client with a finite request timeout so a stalled
// upstream fails fast instead of hanging the caller.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// Game is a reshaped search result. Platforms is a ", "-joined list of
// platform names; ReleaseDate is the release year only.
type Game struct {
	RawgID          int64  `json:"rawgId"`
	GameTitle       string `json:"gameTitle"`
	BackgroundImage string `json:"backgroundImage"`
	Platforms       string `json:"platforms"`
	ReleaseDate     string `json:"releaseDate"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	BackgroundImage string `json:"background_image"`
	Released        string `json:"released"`
	Platforms       []struct {
		Platform struct {
			Name string `json:"name"`
		} `json:"platform"`
	} `json:"platforms"`
}

func (c *Client) Search(ctx context.Context, query string) ([]Game, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("search", query)
	params.Set("search_precise", "true")
	params.Set("page_size", strconv.Itoa(searchPageSize))

	reqURL := c.baseURL + "/games?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream status %d", ErrUnavailable, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	games := make([]Game, 0, len(payload.Results))
	for _, r := range payload.Results {
		games = append(games, Game{
			RawgID:          r.ID,
			GameTitle:       r.Name,
			BackgroundImage: r.BackgroundImage,
			Platforms:       joinPlatforms(r),
			ReleaseDate:     releaseYear(r.Released),
		})
	}

	return games, nil
}

func joinPlatforms(r searchResult) string {
	if len(r.Platforms) == 0 {
		return "Unknown platform"
	}
	names := make([]string, 0, len(r.Platforms))
	for _, p := range r.Platforms {
		names = append(names, p.Platform.Name)
	}
	return strings.Join(names, ", ")
}

func releaseYear(released string) string {
	if len(released) < 4 {
		return "N/A"
	}
	return released[:4]
}
