package tempmail

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/cubicbyte/tempmail-go/internal/api"
)

// loginLength is the length of locally generated mailbox logins.
const loginLength = 10

// Client is the entry point of the library. It holds the transport
// configuration and a cache of the service's allowed domain list.
type Client struct {
	apiClient    *api.Client
	pollInterval time.Duration

	mu      sync.Mutex
	domains []string
}

// New creates a new client. No network I/O happens until the first
// call that needs the service.
func New(opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL:      api.DefaultBaseURL,
		timeout:      defaultHTTPTimeout,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithTimeout(cfg.timeout),
	}
	if cfg.retries {
		apiOpts = append(apiOpts, api.WithRetry(api.DefaultRetryConfig()))
	}

	apiClient := api.New(apiOpts...)
	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return &Client{
		apiClient:    apiClient,
		pollInterval: cfg.pollInterval,
	}
}

// Domains returns the domains currently accepted for mailbox creation.
// The list is fetched once and cached for the lifetime of the client.
func (c *Client) Domains(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.domains == nil {
		domains, err := c.apiClient.GetDomainList(ctx)
		if err != nil {
			return nil, wrapError(err)
		}
		c.domains = domains
	}

	result := make([]string, len(c.domains))
	copy(result, c.domains)
	return result, nil
}

// CreateMailbox returns a mailbox handle. By default the login is a
// random lowercase string and the domain is picked at random from the
// allowed set. Use MailboxOption values to choose parts explicitly or
// to let the server generate the address.
//
// Creation is purely local bookkeeping: the service materializes a
// mailbox the moment mail is addressed to it, and expires it on its
// own schedule.
func (c *Client) CreateMailbox(ctx context.Context, opts ...MailboxOption) (*Mailbox, error) {
	cfg := &mailboxConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.serverGenerated {
		return c.serverGeneratedMailbox(ctx)
	}

	if cfg.address != "" {
		login, domain, ok := strings.Cut(cfg.address, "@")
		if !ok || login == "" || domain == "" {
			return nil, fmt.Errorf("invalid address %q", cfg.address)
		}
		cfg.login, cfg.domain = login, domain
	}

	domains, err := c.Domains(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.domain != "" {
		if !contains(domains, cfg.domain) {
			return nil, fmt.Errorf("domain %q: %w", cfg.domain, ErrInvalidDomain)
		}
	} else {
		if len(domains) == 0 {
			return nil, &ParseError{Op: "getDomainList", Err: fmt.Errorf("empty domain list")}
		}
		cfg.domain = domains[rand.Intn(len(domains))]
	}

	if cfg.login == "" {
		cfg.login = randomLogin(loginLength)
	}

	return newMailbox(cfg.login, cfg.domain, c), nil
}

func (c *Client) serverGeneratedMailbox(ctx context.Context) (*Mailbox, error) {
	addresses, err := c.apiClient.GenRandomMailbox(ctx, 1)
	if err != nil {
		return nil, wrapError(err)
	}
	if len(addresses) == 0 {
		return nil, &ParseError{Op: "genRandomMailbox", Err: fmt.Errorf("empty address list")}
	}

	login, domain, ok := strings.Cut(addresses[0], "@")
	if !ok {
		return nil, &ParseError{Op: "genRandomMailbox", Err: fmt.Errorf("malformed address %q", addresses[0])}
	}
	return newMailbox(login, domain, c), nil
}

// randomLogin generates a random lowercase login of the given length.
func randomLogin(length int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, length)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
