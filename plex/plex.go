package plex

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/clambin/plex-library-viewer/plex/plexhttp"
)

type Option func(*PMSClient)

// WithHTTPClient sets the HTTP client used to call the server.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *PMSClient) {
		client.httpClient = httpClient
	}
}

// WithLogger configures an optional logger.
func WithLogger(logger *slog.Logger) Option {
	return func(client *PMSClient) {
		client.logger = logger
	}
}

// PMSClient calls the Plex Media Server APIs
type PMSClient struct {
	httpClient *http.Client
	logger     *slog.Logger
	url        string
	token      string
}

// NewPMSClient returns a client for the Plex Media Server at url, using token to authenticate itself.
func NewPMSClient(url string, token string, opts ...Option) *PMSClient {
	client := PMSClient{
		httpClient: &http.Client{},
		logger:     slog.New(slog.DiscardHandler),
		url:        url,
		token:      token,
	}
	for _, o := range opts {
		o(&client)
	}
	return &client
}

// URL returns the address of the server.
func (c *PMSClient) URL() string {
	return c.url
}

func call[T any](ctx context.Context, c *PMSClient, endpoint string) (T, error) {
	var response struct {
		MediaContainer T `json:"MediaContainer"`
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+endpoint, nil)
	if err != nil {
		return response.MediaContainer, fmt.Errorf("new request: %w", err)
	}
	req.Header.Add("Accept", "application/json")
	req.Header.Add("X-Plex-Token", c.token)

	c.logger.Debug("calling server", "endpoint", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response.MediaContainer, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return response.MediaContainer, plexhttp.Parse(resp)
	}

	if err = json.NewDecoder(resp.Body).Decode(&response); err != nil {
		err = fmt.Errorf("decode: %w", err)
	}

	return response.MediaContainer, err
}
