package tempmail

import (
	"context"
	"sync"
)

// Mailbox is a disposable inbox identified by a login and domain. The
// pair is all the ownership there is: the remote service expires
// mailboxes and messages on its own schedule.
//
// A Mailbox is safe for concurrent use; independent waits on the same
// mailbox may run on separate goroutines.
type Mailbox struct {
	login  string
	domain string
	client *Client

	// Messages are immutable once delivered, so full fetches are cached
	// by id for the lifetime of the mailbox handle.
	mu    sync.Mutex
	cache map[int]*Message
}

func newMailbox(login, domain string, c *Client) *Mailbox {
	return &Mailbox{
		login:  login,
		domain: domain,
		client: c,
		cache:  make(map[int]*Message),
	}
}

// Login returns the part of the address before the @.
func (m *Mailbox) Login() string {
	return m.login
}

// Domain returns the mailbox domain.
func (m *Mailbox) Domain() string {
	return m.domain
}

// Address returns the full email address.
func (m *Mailbox) Address() string {
	return m.login + "@" + m.domain
}

// String returns the full email address.
func (m *Mailbox) String() string {
	return m.Address()
}

// GetMessages lists the inbox in the order returned by the service
// (newest first). Summaries carry the envelope only; use GetMessage
// for the body and attachments.
func (m *Mailbox) GetMessages(ctx context.Context) ([]*MessageSummary, error) {
	resp, err := m.client.apiClient.GetMessages(ctx, m.login, m.domain)
	if err != nil {
		return nil, wrapError(err)
	}

	summaries := make([]*MessageSummary, 0, len(resp))
	for i := range resp {
		summary, err := summaryFromAPI(&resp[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetMessage fetches the full message with the given id. Fetches are
// cached: asking for the same id again returns the cached message
// without touching the network.
func (m *Mailbox) GetMessage(ctx context.Context, id int) (*Message, error) {
	m.mu.Lock()
	if msg, ok := m.cache[id]; ok {
		m.mu.Unlock()
		return msg, nil
	}
	m.mu.Unlock()

	resp, err := m.client.apiClient.ReadMessage(ctx, m.login, m.domain, id)
	if err != nil {
		return nil, wrapError(err)
	}

	msg, err := messageFromAPI(resp)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.cache[id] = msg
	m.mu.Unlock()
	return msg, nil
}

// DownloadAttachment fetches the raw bytes of an attachment on the
// given message. Content is never cached; every call hits the service.
func (m *Mailbox) DownloadAttachment(ctx context.Context, messageID int, filename string) ([]byte, error) {
	data, err := m.client.apiClient.DownloadAttachment(ctx, m.login, m.domain, messageID, filename)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}
