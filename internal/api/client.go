package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public endpoint of the 1secmail API.
const DefaultBaseURL = "https://www.1secmail.com/api/v1/"

// Client is the HTTP API client. The service exposes a single endpoint
// dispatched on the "action" query parameter; every call is a GET.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      *RetryConfig
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetry enables retries with the given configuration.
func WithRetry(cfg *RetryConfig) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// New creates a new API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// get performs a GET request with the given query parameters and
// returns the raw response body. Transport failures surface as
// *NetworkError, HTTP error statuses as *APIError.
func (c *Client) get(ctx context.Context, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + "?" + query.Encode()

	attempt := 0
	for {
		body, status, err := c.doOnce(ctx, reqURL)
		if err != nil {
			return nil, &NetworkError{Err: err, URL: reqURL}
		}
		if status >= 400 {
			if c.retry != nil && c.retry.ShouldRetry(attempt, status) {
				if err := c.retry.Wait(ctx, attempt); err != nil {
					return nil, err
				}
				attempt++
				continue
			}
			return nil, &APIError{StatusCode: status, Message: string(body)}
		}
		return body, nil
	}
}

func (c *Client) doOnce(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

// getJSON performs a GET request and decodes the JSON response into
// result. An undecodable body is a *ParseError.
func (c *Client) getJSON(ctx context.Context, action string, query url.Values, result interface{}) error {
	body, err := c.get(ctx, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &ParseError{Action: action, Err: err}
	}
	return nil
}
