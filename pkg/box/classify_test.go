package box

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonEnvelope(status int, body string) *ResponseEnvelope {
	return &ResponseEnvelope{
		StatusCode:  status,
		ContentType: "application/json",
		Header:      http.Header{},
		Body:        []byte(body),
	}
}

func TestClassifyNoResponse(t *testing.T) {
	err := classifyResponse(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "connection error", apiErr.Code)
}

func TestClassifyInternalServerError(t *testing.T) {
	// A 500 is a failure even when the body is unparseable garbage.
	env := &ResponseEnvelope{
		StatusCode:  http.StatusInternalServerError,
		ContentType: "text/html",
		Body:        []byte("<html>boom</html>"),
	}
	err := classifyResponse(env)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "Internal Server Error", apiErr.Code)
}

func TestClassifyErrorMarkerUnder200(t *testing.T) {
	// The service sometimes answers HTTP 200 with an error payload; the
	// classifier must catch it via the body marker, not the status line.
	env := jsonEnvelope(200, `{"type":"error","status":"404","code":"not_found","message":"item 123 not found","request_id":"abc123"}`)
	err := classifyResponse(env)
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "not_found", apiErr.Code)
	assert.Equal(t, "item 123 not found", apiErr.Message)
	assert.Equal(t, "abc123", apiErr.RequestID)
}

func TestClassifyNormal200IsSuccess(t *testing.T) {
	env := jsonEnvelope(200, `{"type":"folder","id":"11","name":"docs"}`)
	assert.NoError(t, classifyResponse(env))
}

func TestClassifyIntStatusInBody(t *testing.T) {
	// Newer endpoints send status as a bare number, not a string.
	env := jsonEnvelope(409, `{"type":"error","status":409,"code":"item_name_in_use","message":"name taken"}`)
	err := classifyResponse(env)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 409, apiErr.Status)
	assert.Equal(t, "item_name_in_use", apiErr.Code)
}

func TestClassifyErrorCollectionFallback(t *testing.T) {
	// A single error wrapped in the list envelope: the first entry wins.
	env := jsonEnvelope(200, `{"total_count":1,"entries":[{"type":"error","status":"403","code":"access_denied","message":"nope"}]}`)
	err := classifyResponse(env)
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 403, apiErr.Status)
	assert.Equal(t, "access_denied", apiErr.Code)
	assert.Equal(t, "nope", apiErr.Message)
}

func TestClassifyNonJSONBodyWithMarkerIsSuccess(t *testing.T) {
	// The marker only counts when the content type is JSON.
	env := &ResponseEnvelope{
		StatusCode:  200,
		ContentType: "application/octet-stream",
		Body:        []byte(`"type":"error"`),
	}
	assert.NoError(t, classifyResponse(env))
}

func TestNormalizePreconditionFailed(t *testing.T) {
	env := jsonEnvelope(412, `{"type":"error","status":"412","code":"precondition_failed","message":"etag mismatch"}`)
	err := classifyResponse(env)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.NotErrorIs(t, err, ErrNotModified)
}

func TestNormalizeNotModified(t *testing.T) {
	env := jsonEnvelope(304, `{"type":"error","status":"304","code":"not_modified","message":"already current"}`)
	err := classifyResponse(env)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotModified)
}

func TestClassifyContentResponseNotReady(t *testing.T) {
	env := &ResponseEnvelope{
		StatusCode: http.StatusAccepted,
		Header:     http.Header{"Retry-After": []string{"7"}},
	}
	err := classifyContentResponse(env)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotReady)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 7*time.Second, apiErr.RetryAfter)
}

func TestClassifyContentResponseNotModified(t *testing.T) {
	env := &ResponseEnvelope{StatusCode: http.StatusNotModified}
	assert.ErrorIs(t, classifyContentResponse(env), ErrNotModified)

	ok := &ResponseEnvelope{StatusCode: http.StatusOK}
	assert.NoError(t, classifyContentResponse(ok))
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Status: 404, Code: "not_found", Message: "gone"}
	assert.Equal(t, "box: HTTP 404 (not_found): gone", err.Error())

	conn := connectionError(nil)
	assert.Equal(t, "box: connection error: no response received", conn.Error())
}
