package oauthclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// maxBodySize caps how much of a protected resource response is read.
const maxBodySize = 1 << 20

// Params describes the provider endpoints and credentials.
type Params struct {
	ClientID         string
	ClientSecret     string
	RedirectURL      string
	AuthorizationURL string
	TokenURL         string
	ScopeSeparator   string
	Header           http.Header
}

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the HTTP client used for token exchange and
// protected resource requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// Client is a generic OAuth2 authorization-code client built on
// golang.org/x/oauth2. It adds provider-wide custom headers and a raw
// protected resource fetch on top of the oauth2 package.
type Client struct {
	config     *oauth2.Config
	httpClient *http.Client
	separator  string
}

// New creates a Client.
// Returns an error if ClientID or ClientSecret is empty.
func New(p Params, opts ...Option) (*Client, error) {
	if p.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if p.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	sep := p.ScopeSeparator
	if sep == "" {
		sep = " "
	}

	return &Client{
		config: &oauth2.Config{
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
			RedirectURL:  p.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   p.AuthorizationURL,
				TokenURL:  p.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: wrapClient(o.httpClient, p.Header),
		separator:  sep,
	}, nil
}

// AuthCodeURL generates the authorization URL. Scopes are joined with the
// configured separator instead of the space oauth2.Config would use.
func (c *Client) AuthCodeURL(state string, scopes []string, opts ...oauth2.AuthCodeOption) string {
	if len(scopes) > 0 {
		opts = append(opts, oauth2.SetAuthURLParam("scope", strings.Join(scopes, c.separator)))
	}
	return c.config.AuthCodeURL(state, opts...)
}

// Exchange trades an authorization code for tokens.
// A non-empty redirectURI overrides the configured one.
func (c *Client) Exchange(ctx context.Context, code, redirectURI string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	cfg := c.config
	if redirectURI != "" {
		cp := *c.config
		cp.RedirectURL = redirectURI
		cfg = &cp
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	return cfg.Exchange(ctx, code, opts...)
}

// GetProtectedResource issues an authenticated GET and returns the raw body.
// The access token is sent as a bearer credential. Any non-2xx status is
// reported as *StatusError.
func (c *Client) GetProtectedResource(ctx context.Context, url, accessToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}).SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrNilResponse
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBodySize)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}
