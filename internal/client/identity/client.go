package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/s21platform/quickchat/internal/config"
	"github.com/s21platform/quickchat/internal/model"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Identity.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Identity.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type signInRequest struct {
	Provider model.ProviderKind `json:"provider"`
}

// SignIn asks the identity provider to authenticate with provider and returns
// the resulting user record.
func (c *Client) SignIn(ctx context.Context, provider model.ProviderKind) (*model.User, error) {
	jsonData, err := json.Marshal(signInRequest{Provider: provider})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/signin", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var user model.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if user.UID == "" {
		return nil, fmt.Errorf("identity provider returned no uid")
	}

	return &user, nil
}
