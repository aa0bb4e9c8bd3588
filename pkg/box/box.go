// Package box implements a typed client for the Box v2 file-storage REST
// API: folders, files, comments, discussions, collaborations, users, events,
// search and shared items. Every operation funnels through the same
// pipeline: a request builder produces an immutable descriptor, the
// transport executor sends it, a response classifier decides success or
// failure independent of raw HTTP status, and failures are normalized into
// a single typed error.
package box

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

const (
	defaultBaseURL = "https://api.box.com/"

	oAuthAuthURL  = "https://account.box.com/api/oauth2/authorize"
	oAuthTokenURL = "https://api.box.com/oauth2/token"
)

// Logger is the interface the SDK logs through. internal/logger provides a
// slog-backed implementation; a nil logger is replaced with a no-op.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}

// HTTPConfig controls transport-level behavior. The timeout is an
// enhancement over the original service contract, which modeled none.
type HTTPConfig struct {
	Timeout time.Duration
}

// DefaultHTTPConfig returns the transport defaults.
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{Timeout: 30 * time.Second}
}

// Token is the canonical OAuth2 token representation used by the SDK.
type Token oauth2.Token

// Client is a client for the Box v2 API. It is safe for concurrent use: the
// underlying HTTP client is shared for connection reuse, but no
// request-scoped state is carried between calls, and token refresh happens
// under a single writer inside the token source.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sharedLink string
	sharedLinkPassword string
	logger     Logger
	httpConfig HTTPConfig

	// sleep is the backoff clock, replaceable in tests.
	sleep func(time.Duration)
}

// NewClient creates a client around an initial token. onNewToken, when
// non-nil, is invoked whenever the token source refreshes the token, so the
// caller can persist it.
func NewClient(ctx context.Context, initialToken *Token, onNewToken func(*Token) error, logger Logger) *Client {
	return NewClientWithConfig(ctx, initialToken, onNewToken, logger, DefaultHTTPConfig())
}

// NewClientWithConfig is NewClient with explicit transport configuration.
func NewClientWithConfig(ctx context.Context, initialToken *Token, onNewToken func(*Token) error, logger Logger, cfg HTTPConfig) *Client {
	// The config only needs endpoints here; it is used for refreshes, not
	// for the initial token grant.
	config := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			AuthURL:  oAuthAuthURL,
			TokenURL: oAuthTokenURL,
		},
	}

	source := &persistingTokenSource{
		source:     config.TokenSource(ctx, (*oauth2.Token)(initialToken)),
		onNewToken: onNewToken,
		lastToken:  (*oauth2.Token)(initialToken),
	}

	if logger == nil {
		logger = noopLogger{}
	}

	httpClient := oauth2.NewClient(ctx, source)
	httpClient.Timeout = cfg.Timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		logger:     logger,
		httpConfig: cfg,
		sleep:      time.Sleep,
	}
}

// SetLogger replaces the client's logger.
func (c *Client) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	c.logger = l
}

// SetBaseURL overrides the API endpoint, primarily for tests and staging
// deployments. The URL must end with a slash.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// WithSharedLink returns a copy of the client that authorizes every request
// with the given shared link (and optional password) in addition to the
// bearer token, granting access to shared items without a user context.
func (c *Client) WithSharedLink(link, password string) *Client {
	clone := *c
	clone.sharedLink = link
	clone.sharedLinkPassword = password
	return &clone
}

// persistingTokenSource wraps an oauth2.TokenSource and invokes a callback
// whenever the access token changes, so refreshed tokens survive process
// restarts. lastToken is guarded by mu; concurrent in-flight requests never
// race on the credential.
type persistingTokenSource struct {
	source     oauth2.TokenSource
	onNewToken func(*Token) error
	mu         sync.Mutex
	lastToken  *oauth2.Token
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	newToken, err := s.source.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastToken == nil || s.lastToken.AccessToken != newToken.AccessToken {
		s.lastToken = newToken
		if s.onNewToken != nil {
			if err := s.onNewToken((*Token)(newToken)); err != nil {
				// Failing to persist must be visible, or the next run
				// silently starts from a dead token.
				return nil, err
			}
		}
	}

	return newToken, nil
}

// GetOAuth2Config returns the oauth2 configuration for the interactive
// authorization-code flow used by the CLI.
func GetOAuth2Config(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:  oAuthAuthURL,
			TokenURL: oAuthTokenURL,
		},
	}
}
