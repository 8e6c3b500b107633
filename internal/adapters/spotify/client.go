// Package spotify implements the external track resolver against the Spotify
// Web API using the client-credentials flow.
package spotify

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/wavelength-labs/tastemaker/internal/core/ports"
)

const (
	defaultBaseURL  = "https://api.spotify.com/v1"
	defaultTokenURL = "https://accounts.spotify.com/api/token"

	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3
	defaultBackoff    = 500 * time.Millisecond
)

// ErrMissingCredentials is a configuration error: the engine refuses to start
// without service credentials rather than failing silently per call.
var ErrMissingCredentials = errors.New("spotify: client id and secret are required")

// Config carries the adapter's process configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	TokenURL     string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// Client is an HTTP client for the Spotify adapter.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	baseBackoff time.Duration
	logger      zerolog.Logger
}

// compile-time interface assertion
var _ ports.TrackProvider = (*Client)(nil)

// NewClient constructs an authenticated client. Token acquisition and refresh
// are handled by the oauth2 transport; the timeout bounds every request so a
// slow service cannot block a recommendation call indefinitely.
func NewClient(cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaultTokenURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	httpClient := creds.Client(context.Background())
	httpClient.Timeout = cfg.Timeout

	c := newClient(httpClient, cfg.BaseURL, logger)
	c.maxRetries = cfg.MaxRetries
	c.baseBackoff = cfg.RetryBackoff
	return c, nil
}

// NewClientWithHTTP constructs a client around an existing HTTP client,
// bypassing authentication. Tests use it with httptest servers.
func NewClientWithHTTP(httpClient *http.Client, baseURL string, logger zerolog.Logger) *Client {
	return newClient(httpClient, baseURL, logger)
}

// WithRetryPolicy overrides the retry bounds and returns the client.
func (c *Client) WithRetryPolicy(maxRetries int, backoff time.Duration) *Client {
	c.maxRetries = maxRetries
	c.baseBackoff = backoff
	return c
}

func newClient(httpClient *http.Client, baseURL string, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxRetries:  defaultMaxRetries,
		baseBackoff: defaultBackoff,
		logger:      logger,
	}
}
