package tempmail

import (
	"net/http"
	"regexp"
	"time"
)

const (
	defaultPollInterval = 10 * time.Second
	defaultHTTPTimeout  = 30 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	retries      bool
	pollInterval time.Duration
}

// mailboxConfig holds configuration for mailbox creation.
type mailboxConfig struct {
	address         string
	login           string
	domain          string
	serverGenerated bool
}

// waitConfig holds configuration for waiting on messages.
type waitConfig struct {
	subject      string
	subjectRegex *regexp.Regexp
	from         string
	fromRegex    *regexp.Regexp
	predicate    func(*Message) bool
	timeout      time.Duration
	hasTimeout   bool
	pollInterval time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// MailboxOption configures mailbox creation.
type MailboxOption func(*mailboxConfig)

// WaitOption configures message waiting.
type WaitOption func(*waitConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries enables retrying of transient HTTP failures (408, 429,
// 5xx) with exponential backoff. Retries are off by default; transport
// errors surface to the caller immediately.
func WithRetries() Option {
	return func(c *clientConfig) {
		c.retries = true
	}
}

// WithDefaultPollInterval sets the default delay between inbox queries
// during waits. Default: 10 seconds. Individual waits may override it
// with WithPollInterval.
func WithDefaultPollInterval(interval time.Duration) Option {
	return func(c *clientConfig) {
		c.pollInterval = interval
	}
}

// WithLogin sets the mailbox login (the part before the @).
func WithLogin(login string) MailboxOption {
	return func(c *mailboxConfig) {
		c.login = login
	}
}

// WithDomain sets the mailbox domain. It must be one of the domains
// reported by Client.Domains.
func WithDomain(domain string) MailboxOption {
	return func(c *mailboxConfig) {
		c.domain = domain
	}
}

// WithAddress sets the full mailbox address, e.g. "qwerty123@1secmail.com".
func WithAddress(address string) MailboxOption {
	return func(c *mailboxConfig) {
		c.address = address
	}
}

// WithServerGenerated asks the service to pick a random address instead
// of generating one locally.
func WithServerGenerated() MailboxOption {
	return func(c *mailboxConfig) {
		c.serverGenerated = true
	}
}

// WithSubject filters messages by exact subject match.
func WithSubject(subject string) WaitOption {
	return func(c *waitConfig) {
		c.subject = subject
	}
}

// WithSubjectRegex filters messages by subject regex.
func WithSubjectRegex(pattern *regexp.Regexp) WaitOption {
	return func(c *waitConfig) {
		c.subjectRegex = pattern
	}
}

// WithFrom filters messages by exact sender match.
func WithFrom(from string) WaitOption {
	return func(c *waitConfig) {
		c.from = from
	}
}

// WithFromRegex filters messages by sender regex.
func WithFromRegex(pattern *regexp.Regexp) WaitOption {
	return func(c *waitConfig) {
		c.fromRegex = pattern
	}
}

// WithPredicate filters messages by custom predicate. A panic inside
// the predicate propagates out of the wait unrecovered.
func WithPredicate(fn func(*Message) bool) WaitOption {
	return func(c *waitConfig) {
		c.predicate = fn
	}
}

// WithWaitTimeout bounds the wait. Without it, a wait runs until the
// context is cancelled. A zero timeout performs exactly one poll cycle
// before failing with a *TimeoutError.
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = timeout
		c.hasTimeout = true
	}
}

// WithPollInterval sets the polling interval for this wait.
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}

// Matches checks if a message matches the wait criteria.
func (w *waitConfig) Matches(m *Message) bool {
	if w.subject != "" && m.Subject != w.subject {
		return false
	}
	if w.subjectRegex != nil && !w.subjectRegex.MatchString(m.Subject) {
		return false
	}
	if w.from != "" && m.From != w.from {
		return false
	}
	if w.fromRegex != nil && !w.fromRegex.MatchString(m.From) {
		return false
	}
	if w.predicate != nil && !w.predicate(m) {
		return false
	}
	return true
}
