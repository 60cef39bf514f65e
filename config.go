package weibo

import (
	"maps"
	"net/http"
	"slices"
)

const (
	// ProviderName is the identifier of the Weibo strategy.
	ProviderName = "weibo"

	DefaultAuthorizationURL = "https://api.weibo.com/oauth2/authorize"
	DefaultTokenURL         = "https://api.weibo.com/oauth2/access_token"
	DefaultUserIDEndpoint   = "https://api.weibo.com/2/account/get_uid.json"
	DefaultProfileEndpoint  = "https://api.weibo.com/2/users/show.json"
	DefaultScopeSeparator   = ","

	// DefaultUserAgent is sent when neither CustomHeaders nor UserAgent set one.
	DefaultUserAgent = "weibo-oauth-go"
)

// Config holds Weibo OAuth configuration.
// Only ClientID and ClientSecret are required; every endpoint falls back
// to the public Weibo API.
type Config struct {
	ClientID         string            `env:"WEIBO_CLIENT_ID" yaml:"client_id"`
	ClientSecret     string            `env:"WEIBO_CLIENT_SECRET" yaml:"client_secret"`
	CallbackURL      string            `env:"WEIBO_CALLBACK_URL" yaml:"callback_url"`
	AuthorizationURL string            `env:"WEIBO_AUTHORIZATION_URL" yaml:"authorization_url"`
	TokenURL         string            `env:"WEIBO_TOKEN_URL" yaml:"token_url"`
	UserIDEndpoint   string            `env:"WEIBO_USER_ID_ENDPOINT" yaml:"user_id_endpoint"`
	ProfileEndpoint  string            `env:"WEIBO_PROFILE_ENDPOINT" yaml:"profile_endpoint"`
	ScopeSeparator   string            `env:"WEIBO_SCOPE_SEPARATOR" yaml:"scope_separator"`
	UserAgent        string            `env:"WEIBO_USER_AGENT" yaml:"user_agent"`
	CustomHeaders    map[string]string `env:"WEIBO_CUSTOM_HEADERS" yaml:"custom_headers"`
	Scopes           []string          `env:"WEIBO_SCOPES" envSeparator:"," yaml:"scopes"`
}

// ResolveConfig returns a copy of cfg with defaults applied.
//
// The User-Agent header is resolved in this order: a "User-Agent" entry in
// CustomHeaders, then UserAgent, then DefaultUserAgent. Header names are
// matched case-insensitively and stored in canonical form. The caller's
// CustomHeaders map is not modified.
func ResolveConfig(cfg Config) Config {
	if cfg.AuthorizationURL == "" {
		cfg.AuthorizationURL = DefaultAuthorizationURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.UserIDEndpoint == "" {
		cfg.UserIDEndpoint = DefaultUserIDEndpoint
	}
	if cfg.ProfileEndpoint == "" {
		cfg.ProfileEndpoint = DefaultProfileEndpoint
	}
	if cfg.ScopeSeparator == "" {
		cfg.ScopeSeparator = DefaultScopeSeparator
	}

	headers := canonicalHeaders(cfg.CustomHeaders)
	if headers["User-Agent"] == "" {
		ua := cfg.UserAgent
		if ua == "" {
			ua = DefaultUserAgent
		}
		headers["User-Agent"] = ua
	}
	cfg.CustomHeaders = headers
	cfg.Scopes = append([]string(nil), cfg.Scopes...)

	return cfg
}

// header converts CustomHeaders into canonical http.Header form.
func (c Config) header() http.Header {
	h := make(http.Header, len(c.CustomHeaders))
	for k, v := range c.CustomHeaders {
		h.Set(k, v)
	}
	return h
}

// canonicalHeaders copies headers with canonical names. When several keys
// differ only by case, the first non-empty value in sorted key order wins.
func canonicalHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers)+1)
	for _, k := range slices.Sorted(maps.Keys(headers)) {
		name := http.CanonicalHeaderKey(k)
		if out[name] == "" {
			out[name] = headers[k]
		}
	}
	return out
}
