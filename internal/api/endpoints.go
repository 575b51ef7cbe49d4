package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Literal bodies returned by the service with status 200 when the
// referenced resource does not exist.
const (
	messageNotFoundBody = "Message not found"
	fileNotFoundBody    = "File not found"
)

// GetDomainList returns the list of domains currently accepted for
// mailbox creation.
func (c *Client) GetDomainList(ctx context.Context) ([]string, error) {
	q := url.Values{}
	q.Set("action", "getDomainList")

	var domains []string
	if err := c.getJSON(ctx, "getDomainList", q, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// GenRandomMailbox asks the service to generate count random addresses.
func (c *Client) GenRandomMailbox(ctx context.Context, count int) ([]string, error) {
	q := url.Values{}
	q.Set("action", "genRandomMailbox")
	q.Set("count", strconv.Itoa(count))

	var addresses []string
	if err := c.getJSON(ctx, "genRandomMailbox", q, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetMessages lists the inbox of login@domain in the order returned by
// the service (newest first).
func (c *Client) GetMessages(ctx context.Context, login, domain string) ([]MessageSummary, error) {
	q := url.Values{}
	q.Set("action", "getMessages")
	q.Set("login", login)
	q.Set("domain", domain)

	var summaries []MessageSummary
	if err := c.getJSON(ctx, "getMessages", q, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// ReadMessage fetches the full message with the given id.
func (c *Client) ReadMessage(ctx context.Context, login, domain string, id int) (*Message, error) {
	q := url.Values{}
	q.Set("action", "readMessage")
	q.Set("login", login)
	q.Set("domain", domain)
	q.Set("id", strconv.Itoa(id))

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		// Unknown ids come back as a plain-text body with status 200.
		if strings.TrimSpace(string(body)) == messageNotFoundBody {
			return nil, fmt.Errorf("message %d: %w", id, ErrMessageNotFound)
		}
		return nil, &ParseError{Action: "readMessage", Err: err}
	}
	return &msg, nil
}

// DownloadAttachment fetches the raw bytes of an attachment file.
func (c *Client) DownloadAttachment(ctx context.Context, login, domain string, id int, file string) ([]byte, error) {
	q := url.Values{}
	q.Set("action", "download")
	q.Set("login", login)
	q.Set("domain", domain)
	q.Set("id", strconv.Itoa(id))
	q.Set("file", file)

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	switch strings.TrimSpace(string(body)) {
	case messageNotFoundBody:
		return nil, fmt.Errorf("message %d: %w", id, ErrMessageNotFound)
	case fileNotFoundBody:
		return nil, fmt.Errorf("attachment %q: %w", file, ErrAttachmentNotFound)
	}
	return body, nil
}
