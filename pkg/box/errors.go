package box

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Sentinel errors. Wrapped errors from the SDK can be identified with
// errors.Is, e.g. errors.Is(err, box.ErrPreconditionFailed).
var (
	// ErrConnection means no response was obtained at all.
	ErrConnection = newSentinel("connection error")
	// ErrInternal means the service answered HTTP 500, usable body or not.
	ErrInternal = newSentinel("internal server error")
	// ErrPreconditionFailed means a supplied etag no longer matches the
	// current state of the item; the caller's copy is stale.
	ErrPreconditionFailed = newSentinel("precondition failed")
	// ErrNotModified means a supplied etag still matches; the service
	// reports "you already have the latest version" as an error-shaped
	// response rather than a normal payload.
	ErrNotModified = newSentinel("not modified")
	// ErrNotReady means requested content (download, thumbnail) has not
	// been generated yet. The APIError carries the server-suggested
	// retry-after duration.
	ErrNotReady = newSentinel("content not ready")
	// ErrInvalidPagination means offset is not a multiple of limit.
	ErrInvalidPagination = newSentinel("offset must be a multiple of limit")
	// ErrDecodingFailed means a response body could not be deserialized.
	ErrDecodingFailed = newSentinel("decoding response failed")
)

type sentinelError string

func (e sentinelError) Error() string { return "box: " + string(e) }

func newSentinel(msg string) error { return sentinelError(msg) }

// APIError is the one error shape the rest of the system understands. Every
// failure, whether reported by the service, synthesized from a transport
// fault, or raised locally before dispatch, is normalized into it. It is
// created once and never mutated.
type APIError struct {
	// Status is the numeric HTTP-style status the service reported.
	// Zero when no response was obtained.
	Status int
	// Code is the service's short machine-readable code.
	Code string
	// Message is the service's human-readable description.
	Message string
	// RequestID identifies the exchange in the service's own logs.
	RequestID string
	// ContextInfo carries per-field validation details, when present.
	ContextInfo map[string]any
	// RetryAfter is the server-suggested wait before retrying, for
	// not-ready responses. Zero otherwise.
	RetryAfter time.Duration

	sentinel error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("box: %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("box: HTTP %d (%s): %s", e.Status, e.Code, e.Message)
}

// Unwrap exposes the distinguished sentinel, if any, so callers can branch
// with errors.Is instead of string-matching the message.
func (e *APIError) Unwrap() error { return e.sentinel }

// sentinelForStatus maps distinguished statuses onto their sentinels.
// Whether every etag-capable endpoint actually returns 304/412 consistently
// is unverified service behavior; the mapping is applied when seen, never
// assumed.
func sentinelForStatus(status int) error {
	switch status {
	case http.StatusNotModified:
		return ErrNotModified
	case http.StatusPreconditionFailed:
		return ErrPreconditionFailed
	case http.StatusInternalServerError:
		return ErrInternal
	}
	return nil
}

// ArgumentError reports a missing or empty required parameter. It is always
// raised before any network round trip, on both the synchronous and
// asynchronous call paths.
type ArgumentError struct {
	Param string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("box: required argument %q is empty", e.Param)
}

func requireArg(name, value string) error {
	if value == "" {
		return &ArgumentError{Param: name}
	}
	return nil
}

// errorBody mirrors the service's error payload. Status arrives as an
// int-as-string on older endpoints and as a bare number on newer ones, so it
// is read as a json.Number.
type errorBody struct {
	Type        string         `json:"type"`
	Status      json.Number    `json:"status"`
	Code        string         `json:"code"`
	Message     string         `json:"message"`
	RequestID   string         `json:"request_id"`
	ContextInfo map[string]any `json:"context_info"`
}

// errorCollection is the list envelope the service sometimes wraps a single
// error in.
type errorCollection struct {
	TotalCount int         `json:"total_count"`
	Entries    []errorBody `json:"entries"`
}

func (b errorBody) statusCode() int {
	n, err := b.Status.Int64()
	if err != nil {
		return 0
	}
	return int(n)
}
