package stickers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/s21platform/quickchat/internal/config"
	"github.com/s21platform/quickchat/internal/model"
)

// Client reads the static sticker catalog. The catalog never changes while
// the process runs, so the first successful response is kept.
type Client struct {
	url        string
	httpClient *http.Client

	mu          sync.Mutex
	collections []model.StickerCollection
}

func New(cfg *config.Config) *Client {
	return &Client{
		url: cfg.Stickers.URL,
		httpClient: &http.Client{
			Timeout: cfg.Stickers.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) Collections(ctx context.Context) ([]model.StickerCollection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.collections != nil {
		return c.collections, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
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

	var collections []model.StickerCollection
	if err := json.NewDecoder(resp.Body).Decode(&collections); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if collections == nil {
		collections = []model.StickerCollection{}
	}

	c.collections = collections

	return collections, nil
}
