package fetcher

import (
	"context"
	"fmt"
	"io"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/quantmind-br/westconf-go/internal/domain"
	"github.com/quantmind-br/westconf-go/internal/utils"
)

const defaultUserAgent = "westconf"

// Client fetches manifest documents and directory listings over HTTP
type Client struct {
	tlsClient  tls_client.HttpClient
	userAgent  string
	suffix     string
	apiBaseURL string
	logger     *utils.Logger
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	Timeout    time.Duration
	UserAgent  string
	Suffix     string // manifest file suffix, e.g. ".yml"
	APIBaseURL string // content-listing endpoint base, overridable for tests
	Logger     *utils.Logger
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:    30 * time.Second,
		UserAgent:  defaultUserAgent,
		Suffix:     ".yml",
		APIBaseURL: "https://api.github.com",
	}
}

// NewClient creates a new HTTP client
func NewClient(opts ClientOptions) (*Client, error) {
	defaults := DefaultClientOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = defaults.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaults.UserAgent
	}
	if opts.Suffix == "" {
		opts.Suffix = defaults.Suffix
	}
	if opts.APIBaseURL == "" {
		opts.APIBaseURL = defaults.APIBaseURL
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewDefaultLogger()
	}

	tlsOpts := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(int(opts.Timeout.Seconds())),
		tls_client.WithClientProfile(profiles.Chrome_131),
	}

	tlsClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), tlsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tls client: %w", err)
	}

	return &Client{
		tlsClient:  tlsClient,
		userAgent:  opts.UserAgent,
		suffix:     opts.Suffix,
		apiBaseURL: opts.APIBaseURL,
		logger:     opts.Logger.WithComponent("fetcher"),
	}, nil
}

// FetchText retrieves a text document. It performs a single attempt and
// returns a FetchError on any transport failure or non-success status.
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	body, status, err := c.get(ctx, url)
	if err != nil {
		return "", domain.NewFetchError(url, 0, err)
	}
	if status < 200 || status >= 300 {
		return "", domain.NewFetchError(url, status, fmt.Errorf("HTTP %d", status))
	}
	return string(body), nil
}

// get performs a single GET request
func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.tlsClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, resp.StatusCode, nil
}
