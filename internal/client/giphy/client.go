package giphy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/s21platform/quickchat/internal/config"
	"github.com/s21platform/quickchat/internal/model"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Giphy.BaseURL, "/"),
		apiKey:  cfg.Giphy.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Giphy.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type searchResponse struct {
	Data []struct {
		ID     string `json:"id"`
		Images struct {
			Original struct {
				URL string `json:"url"`
			} `json:"original"`
		} `json:"images"`
	} `json:"data"`
}

// Search returns GIFs matching query, or the trending ones for a blank query.
func (c *Client) Search(ctx context.Context, query string) ([]model.GIF, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)

	endpoint := c.baseURL + "/v1/gifs/trending"
	if q := strings.TrimSpace(query); q != "" {
		endpoint = c.baseURL + "/v1/gifs/search"
		params.Set("q", q)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	gifs := make([]model.GIF, 0, len(response.Data))
	for _, item := range response.Data {
		if item.Images.Original.URL == "" {
			continue
		}
		gifs = append(gifs, model.GIF{ID: item.ID, URL: item.Images.Original.URL})
	}

	return gifs, nil
}
