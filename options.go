package weibo

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/weibo/pkg/logger"
)

// OAuth2Client is the generic OAuth2 capability the Strategy composes over:
// building the authorization URL, exchanging a code for a token and fetching
// a protected resource with a bearer token.
type OAuth2Client interface {
	AuthCodeURL(state string, scopes []string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code, redirectURI string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	GetProtectedResource(ctx context.Context, url, accessToken string) ([]byte, error)
}

// Option configures a Strategy.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
	client     OAuth2Client
}

func newOptions(opts ...Option) *options {
	o := &options{logger: logger.NewNope()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithHTTPClient sets a custom HTTP client for OAuth requests.
// This is useful for testing with httptest servers or injecting
// custom transports (e.g., logging, retries).
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the strategy logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOAuth2Client replaces the built-in OAuth2 client.
// WithHTTPClient has no effect when this option is set.
func WithOAuth2Client(c OAuth2Client) Option {
	return func(o *options) {
		o.client = c
	}
}
