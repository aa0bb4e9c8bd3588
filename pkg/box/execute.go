package box

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ResponseEnvelope carries one completed HTTP exchange. It exists only for
// the duration of a single request/response cycle.
type ResponseEnvelope struct {
	StatusCode  int
	ContentType string
	Header      http.Header
	Body        []byte
}

// Result is the outcome of an asynchronous exchange: exactly one of
// Envelope or Err is meaningful, mirroring the sync return pair.
type Result struct {
	Envelope *ResponseEnvelope
	Err      error
}

// Do executes a descriptor synchronously and classifies the outcome. A
// transport-level failure (no response at all) comes back as a normalized
// *APIError, never as a panic or a bare transport error.
func (c *Client) Do(ctx context.Context, desc *RequestDescriptor) (*ResponseEnvelope, error) {
	req, err := c.newHTTPRequest(ctx, desc)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", desc.Method, "path", desc.Path, "error", err)
		return nil, connectionError(err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, connectionError(err)
	}

	env := &ResponseEnvelope{
		StatusCode:  res.StatusCode,
		ContentType: res.Header.Get("Content-Type"),
		Header:      res.Header,
		Body:        body,
	}

	if err := classifyResponse(env); err != nil {
		return env, err
	}
	return env, nil
}

// DoAsync executes a descriptor without blocking the caller. The returned
// channel is buffered and delivers exactly one Result per exchange, success
// or failure, never both and never zero for a completed exchange.
func (c *Client) DoAsync(ctx context.Context, desc *RequestDescriptor) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		env, err := c.Do(ctx, desc)
		ch <- Result{Envelope: env, Err: err}
	}()
	return ch
}

func (c *Client) newHTTPRequest(ctx context.Context, desc *RequestDescriptor) (*http.Request, error) {
	u := c.baseURL + desc.Path
	if len(desc.Query) > 0 {
		u += "?" + desc.Query.Encode()
	}

	var body io.Reader
	if desc.Body != nil {
		body = bytes.NewReader(desc.Body)
	}
	req, err := http.NewRequestWithContext(ctx, desc.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for k, v := range desc.Header {
		req.Header[k] = v
	}
	if desc.ContentType != "" {
		req.Header.Set("Content-Type", desc.ContentType)
	}
	if c.sharedLink != "" && req.Header.Get("BoxApi") == "" {
		req.Header.Set("BoxApi", sharedLinkHeader(c.sharedLink, c.sharedLinkPassword))
	}

	// Correlation id, logged on both ends of the exchange.
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	c.logger.Debug("sending request", "id", reqID, "method", desc.Method, "path", desc.Path)

	return req, nil
}

// doAndDecode executes a descriptor and deserializes the response body into
// dest according to its content type.
func (c *Client) doAndDecode(ctx context.Context, desc *RequestDescriptor, dest any) error {
	env, err := c.Do(ctx, desc)
	if err != nil {
		return err
	}
	return decodeInto(env, dest)
}

// decodeInto deserializes an envelope body into dest. JSON and XML are
// dispatched on the response content type; empty bodies (the service
// answers some successes with no body at all) decode to the zero value.
func decodeInto(env *ResponseEnvelope, dest any) error {
	if dest == nil || len(env.Body) == 0 {
		return nil
	}
	switch {
	case isJSONContent(env.ContentType):
		if err := json.Unmarshal(env.Body, dest); err != nil {
			return fmt.Errorf("%w: %v", ErrDecodingFailed, err)
		}
	case isXMLContent(env.ContentType):
		if err := xml.Unmarshal(env.Body, dest); err != nil {
			return fmt.Errorf("%w: %v", ErrDecodingFailed, err)
		}
	default:
		return fmt.Errorf("%w: unsupported content type %q", ErrDecodingFailed, env.ContentType)
	}
	return nil
}

func isJSONContent(contentType string) bool {
	return strings.Contains(contentType, "json")
}

func isXMLContent(contentType string) bool {
	return strings.Contains(contentType, "xml")
}
