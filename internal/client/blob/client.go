package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/s21platform/quickchat/internal/config"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/pkg/validator"
)

var keyPattern = regexp.MustCompile(`^[\p{L}\p{N}._-]+$`)

type Client struct {
	baseURL    string
	publicURL  string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.Blob.BaseURL, "/"),
		publicURL: strings.TrimRight(cfg.Blob.PublicURL, "/"),
		apiKey:    cfg.Blob.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Blob.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// PublicURL is the address the stored object is served from.
func (c *Client) PublicURL(key string) string {
	return c.publicURL + "/" + url.PathEscape(key)
}

// Put stores data under key and returns its public URL.
func (c *Client) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.objectURL(key), bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	c.authorize(req)
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(data))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return c.PublicURL(key), nil
}

// KeyOf resolves a preview reference to an object key. A reference is either
// a bare key or an object URL under the blob store or its public address;
// anything else is rejected with model.ErrForeignPreview.
func (c *Client) KeyOf(ref string) (string, error) {
	key := ref
	for _, prefix := range []string{c.baseURL + "/", c.publicURL + "/"} {
		rest, ok := strings.CutPrefix(ref, prefix)
		if !ok {
			continue
		}
		unescaped, err := url.PathUnescape(rest)
		if err != nil {
			return "", fmt.Errorf("%w: %q", model.ErrForeignPreview, ref)
		}
		key = unescaped
		break
	}

	if key == "." || key == ".." || !keyPattern.MatchString(key) {
		return "", fmt.Errorf("%w: %q", model.ErrForeignPreview, ref)
	}
	return key, nil
}

// Get reads the object stored under key. Objects above the attachment size
// limit are rejected with model.ErrFileTooLarge.
func (c *Client) Get(ctx context.Context, key string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.objectURL(key), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", fmt.Errorf("%s: %w", key, model.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, validator.MaxFileSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}
	if len(data) > validator.MaxFileSize {
		return nil, "", model.ErrFileTooLarge
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func (c *Client) objectURL(key string) string {
	return c.baseURL + "/" + url.PathEscape(key)
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "apikey "+c.apiKey)
	}
}
