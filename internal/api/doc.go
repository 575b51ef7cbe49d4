// Package api provides HTTP client functionality for communicating with the
// 1secmail API. The service exposes a single endpoint dispatched on the
// "action" query parameter; every operation is an unauthenticated GET.
//
// # Error Handling
//
// Transport failures surface as [*NetworkError], HTTP error statuses as
// [*APIError], and response bodies that do not match the documented shape
// as [*ParseError]. The service reports missing resources with a 200
// status and a plain-text body; those are mapped to sentinel errors:
//
//   - [ErrMessageNotFound]: the message id is unknown or has expired.
//   - [ErrAttachmentNotFound]: the attachment filename is unknown.
//
// Use errors.Is to check for specific error conditions:
//
//	if errors.Is(err, api.ErrMessageNotFound) {
//	    // Handle missing message
//	}
//
// # Retry Behavior
//
// Requests are not retried by default; the service documents no
// transient-error contract. Retries can be enabled with [WithRetry],
// in which case [RetryConfig] governs exponential backoff with jitter
// for retryable status codes (408, 429, 5xx).
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may
// call methods on a single Client simultaneously.
package api
