package box

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// errorMarker is the literal the service embeds in every error payload. The
// classifier sniffs the raw body for it because the service sometimes
// returns HTTP 200 with an error payload; branching on status codes alone
// would misclassify those responses as success. Do not replace this check
// with pure status-code dispatch.
var errorMarker = []byte(`"type":"error"`)

// classifyResponse decides success or failure for a completed exchange,
// independent of raw HTTP status. Rules apply in order, first match wins:
//
//  1. no response at all: connection failure
//  2. HTTP 500: internal error, usable body or not
//  3. JSON body containing the error marker: service-reported error
//  4. otherwise: success
//
// It returns nil for success and a normalized *APIError for failure.
func classifyResponse(env *ResponseEnvelope) error {
	if env == nil {
		return connectionError(nil)
	}
	if env.StatusCode == http.StatusInternalServerError {
		return &APIError{
			Status:   http.StatusInternalServerError,
			Code:     "Internal Server Error",
			Message:  string(env.Body),
			sentinel: ErrInternal,
		}
	}
	if isJSONContent(env.ContentType) && bytes.Contains(env.Body, errorMarker) {
		return normalizeErrorBody(env)
	}
	return nil
}

// normalizeErrorBody converts a classified failure body into the one typed
// error the rest of the system understands. The body is first read as a
// single error object; when that yields no usable code the collection
// envelope form is tried and its first entry taken, because the service
// sometimes wraps a single error in a list.
func normalizeErrorBody(env *ResponseEnvelope) *APIError {
	var eb errorBody
	if err := json.Unmarshal(env.Body, &eb); err != nil || eb.Code == "" {
		var col errorCollection
		if jerr := json.Unmarshal(env.Body, &col); jerr == nil && len(col.Entries) > 0 {
			eb = col.Entries[0]
		}
	}

	status := eb.statusCode()
	if status == 0 {
		status = env.StatusCode
	}

	apiErr := &APIError{
		Status:      status,
		Code:        eb.Code,
		Message:     eb.Message,
		RequestID:   eb.RequestID,
		ContextInfo: eb.ContextInfo,
		sentinel:    sentinelForStatus(status),
	}
	if ra := retryAfter(env.Header); ra > 0 {
		apiErr.RetryAfter = ra
	}
	return apiErr
}

// classifyContentResponse covers the byte-payload endpoints (content reads,
// thumbnails), which signal through bare statuses instead of error bodies:
// 202 with Retry-After means generation is still pending, 304 means the
// caller already has the current bytes.
func classifyContentResponse(env *ResponseEnvelope) error {
	switch env.StatusCode {
	case http.StatusAccepted:
		return &APIError{
			Status:     http.StatusAccepted,
			Code:       "retry_later",
			Message:    "content has not been generated yet",
			RetryAfter: retryAfter(env.Header),
			sentinel:   ErrNotReady,
		}
	case http.StatusNotModified:
		return &APIError{
			Status:   http.StatusNotModified,
			Code:     "not_modified",
			Message:  "content has not changed",
			sentinel: ErrNotModified,
		}
	}
	return nil
}

func retryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func connectionError(cause error) *APIError {
	msg := "no response received"
	if cause != nil {
		msg = cause.Error()
	}
	return &APIError{
		Code:     "connection error",
		Message:  msg,
		sentinel: ErrConnection,
	}
}
