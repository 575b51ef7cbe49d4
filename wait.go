package tempmail

import (
	"context"
	"fmt"
	"time"
)

// WaitForMessage polls the inbox until a message matching the given
// criteria arrives. Every poll lists the inbox and evaluates each
// message in list order; the first match wins and is returned
// immediately.
//
// Without WithWaitTimeout the wait runs until the context is
// cancelled. When a timeout is set, the deadline is checked after each
// full evaluation pass, so a zero timeout still performs exactly one
// poll cycle. An expired timeout returns a *TimeoutError; context
// cancellation returns ctx.Err().
//
// Transport errors during a poll propagate immediately rather than
// being retried silently.
//
// Example:
//
//	msg, err := mailbox.WaitForMessage(ctx,
//	    tempmail.WithFrom("noreply@reddit.com"),
//	    tempmail.WithWaitTimeout(2*time.Minute),
//	)
func (m *Mailbox) WaitForMessage(ctx context.Context, opts ...WaitOption) (*Message, error) {
	cfg := &waitConfig{
		pollInterval: m.client.pollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.pollInterval <= 0 {
		cfg.pollInterval = defaultPollInterval
	}

	var deadline time.Time
	if cfg.hasTimeout {
		deadline = time.Now().Add(cfg.timeout)
	}

	for {
		msg, err := m.pollOnce(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if msg != nil {
			return msg, nil
		}

		if cfg.hasTimeout && !time.Now().Before(deadline) {
			return nil, &TimeoutError{Timeout: cfg.timeout}
		}

		if err := sleep(ctx, cfg.pollInterval); err != nil {
			return nil, err
		}
	}
}

// WaitForMessageCount waits until at least count matching messages have
// arrived and returns the first count of them in arrival-list order.
// Matches are deduplicated by message id across polls.
func (m *Mailbox) WaitForMessageCount(ctx context.Context, count int, opts ...WaitOption) ([]*Message, error) {
	if count < 0 {
		return nil, fmt.Errorf("count must be non-negative, got %d", count)
	}
	if count == 0 {
		return []*Message{}, nil
	}

	cfg := &waitConfig{
		pollInterval: m.client.pollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.pollInterval <= 0 {
		cfg.pollInterval = defaultPollInterval
	}

	var deadline time.Time
	if cfg.hasTimeout {
		deadline = time.Now().Add(cfg.timeout)
	}

	seen := make(map[int]struct{})
	var results []*Message

	for {
		summaries, err := m.GetMessages(ctx)
		if err != nil {
			return nil, err
		}
		for _, s := range summaries {
			if _, ok := seen[s.ID]; ok {
				continue
			}
			msg, err := m.GetMessage(ctx, s.ID)
			if err != nil {
				return nil, err
			}
			if cfg.Matches(msg) {
				seen[s.ID] = struct{}{}
				results = append(results, msg)
				if len(results) >= count {
					return results[:count], nil
				}
			}
		}

		if cfg.hasTimeout && !time.Now().Before(deadline) {
			return nil, &TimeoutError{Timeout: cfg.timeout}
		}

		if err := sleep(ctx, cfg.pollInterval); err != nil {
			return nil, err
		}
	}
}

// pollOnce runs a single list-and-evaluate pass. It returns the first
// matching message, or nil when nothing matched.
func (m *Mailbox) pollOnce(ctx context.Context, cfg *waitConfig) (*Message, error) {
	summaries, err := m.GetMessages(ctx)
	if err != nil {
		return nil, err
	}

	for _, s := range summaries {
		msg, err := m.GetMessage(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		if cfg.Matches(msg) {
			return msg, nil
		}
	}
	return nil, nil
}

// sleep blocks for the given duration, honoring context cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
