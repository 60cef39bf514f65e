package weibo

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/weibo/internal/oauthclient"
)

// VerifyFunc is supplied by the application to turn a Weibo identity into an
// application user. Returning a nil user and a nil error rejects the login.
type VerifyFunc func(ctx context.Context, token *oauth2.Token, profile *Profile) (user any, err error)

// Strategy authenticates users against Weibo using OAuth 2.0.
// It is safe for concurrent use.
type Strategy struct {
	client OAuth2Client
	verify VerifyFunc
	logger *slog.Logger
	config Config
}

// New creates a Weibo strategy. Defaults are applied to cfg as described
// by ResolveConfig.
// Returns an error if ClientID, ClientSecret or verify is missing.
func New(cfg Config, verify VerifyFunc, opts ...Option) (*Strategy, error) {
	if verify == nil {
		return nil, ErrMissingVerify
	}

	o := newOptions(opts...)
	cfg = ResolveConfig(cfg)

	client := o.client
	if client == nil {
		var clientOpts []oauthclient.Option
		if o.httpClient != nil {
			clientOpts = append(clientOpts, oauthclient.WithHTTPClient(o.httpClient))
		}
		c, err := oauthclient.New(oauthclient.Params{
			ClientID:         cfg.ClientID,
			ClientSecret:     cfg.ClientSecret,
			RedirectURL:      cfg.CallbackURL,
			AuthorizationURL: cfg.AuthorizationURL,
			TokenURL:         cfg.TokenURL,
			ScopeSeparator:   cfg.ScopeSeparator,
			Header:           cfg.header(),
		}, clientOpts...)
		if err != nil {
			return nil, err
		}
		client = c
	}

	return &Strategy{
		client: client,
		verify: verify,
		logger: o.logger.With(slog.String("provider", ProviderName)),
		config: cfg,
	}, nil
}

// Name returns the provider identifier.
func (s *Strategy) Name() string {
	return ProviderName
}

// Config returns a copy of the resolved configuration.
func (s *Strategy) Config() Config {
	return ResolveConfig(s.config)
}

// Headers returns the resolved headers sent with every request.
// The returned header is a copy.
func (s *Strategy) Headers() http.Header {
	return s.config.header()
}

// UserAgent returns the resolved User-Agent header value.
func (s *Strategy) UserAgent() string {
	return s.config.header().Get("User-Agent")
}

// AuthCodeURL generates the authorization URL.
func (s *Strategy) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return s.client.AuthCodeURL(state, s.config.Scopes, opts...)
}

// Exchange trades an authorization code for tokens.
// Failures are reported as *InternalOAuthError.
func (s *Strategy) Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	token, err := s.client.Exchange(ctx, code, redirectURI)
	if err != nil {
		s.logger.DebugContext(ctx, "token exchange failed", slog.Any("error", err))
		return nil, newInternalOAuthError("failed to obtain access token", err)
	}
	return token, nil
}

// UserProfile retrieves the user's profile with two sequential calls: the
// user id endpoint resolves the uid, then the profile endpoint is queried
// with ?uid=<uid>.
//
// Transport and HTTP failures are returned as *InternalOAuthError. Invalid
// JSON is returned as ErrDecodeFailed joined with the decoder error.
func (s *Strategy) UserProfile(ctx context.Context, accessToken string) (*Profile, error) {
	uid, err := s.resolveUID(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	profileURL, err := withUID(s.config.ProfileEndpoint, uid)
	if err != nil {
		return nil, newInternalOAuthError("", err)
	}

	s.logger.DebugContext(ctx, "fetching profile", slog.String("uid", uid))
	body, err := s.client.GetProtectedResource(ctx, profileURL, accessToken)
	if err != nil {
		s.logger.DebugContext(ctx, "profile request failed", slog.String("uid", uid), slog.Any("error", err))
		return nil, newInternalOAuthError("", err)
	}

	raw, err := decodeObject(body, "profile")
	if err != nil {
		return nil, err
	}

	return FormatProfile(raw), nil
}

// Authenticate completes the authorization-code flow: it exchanges code for
// a token, loads the profile and hands both to the verify callback.
func (s *Strategy) Authenticate(ctx context.Context, code, redirectURI string) (any, error) {
	token, err := s.Exchange(ctx, code, redirectURI)
	if err != nil {
		return nil, err
	}

	profile, err := s.UserProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.verify(ctx, token, profile)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserRejected
	}

	s.logger.DebugContext(ctx, "user authenticated", slog.String("id", profile.ID))
	return user, nil
}

func (s *Strategy) resolveUID(ctx context.Context, accessToken string) (string, error) {
	s.logger.DebugContext(ctx, "resolving uid")
	body, err := s.client.GetProtectedResource(ctx, s.config.UserIDEndpoint, accessToken)
	if err != nil {
		s.logger.DebugContext(ctx, "uid request failed", slog.Any("error", err))
		return "", newInternalOAuthError("", err)
	}

	raw, err := decodeObject(body, "uid")
	if err != nil {
		return "", err
	}

	return firstString(raw, "uid"), nil
}

// withUID sets the uid query parameter on endpoint, keeping any existing query.
func withUID(endpoint, uid string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("uid", uid)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
