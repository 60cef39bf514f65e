// Package loginserver is a minimal host for a single OAuth strategy. It
// drives the browser side of the authorization-code flow and renders the
// authenticated user as JSON. It exists to exercise a strategy end to end
// during development.
package loginserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/weibo/pkg/logger"
)

const (
	stateCookieName = "oauth_state"
	stateTTL        = 10 * time.Minute
)

// Strategy is the part of an OAuth strategy the server drives.
type Strategy interface {
	Name() string
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Authenticate(ctx context.Context, code, redirectURI string) (any, error)
}

// Server serves the login routes for one strategy.
type Server struct {
	strategy Strategy
	logger   *slog.Logger
	rejected error
	secure   bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSecureCookies marks the state cookie Secure.
func WithSecureCookies(secure bool) Option {
	return func(s *Server) {
		s.secure = secure
	}
}

// WithRejectedError sets the error the strategy returns when the
// application refuses a user. It is reported as 403 instead of 502.
func WithRejectedError(err error) Option {
	return func(s *Server) {
		s.rejected = err
	}
}

// New creates a Server for strategy.
func New(strategy Strategy, opts ...Option) *Server {
	s := &Server{strategy: strategy, logger: logger.NewNope()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RequestID is a logger.ContextExtractor that adds the chi request id.
func RequestID(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

// Routes returns the router:
//
//	GET /healthz
//	GET /auth/{provider}
//	GET /auth/{provider}/callback
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/auth/{provider}", func(r chi.Router) {
		r.Use(s.matchProvider)
		r.Get("/", s.begin)
		r.Get("/callback", s.callback)
	})

	return r
}

func (s *Server) matchProvider(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "provider") != s.strategy.Name() {
			writeError(w, http.StatusNotFound, "unknown provider")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) begin(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/auth",
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, s.strategy.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	if e := q.Get("error"); e != "" {
		s.logger.InfoContext(ctx, "authorization denied",
			slog.String("error", e),
			slog.String("error_description", q.Get("error_description")),
		)
		writeError(w, http.StatusUnauthorized, e)
		return
	}

	c, err := r.Cookie(stateCookieName)
	if err != nil || c.Value == "" || c.Value != q.Get("state") {
		writeError(w, http.StatusBadRequest, "invalid state")
		return
	}

	code := q.Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing code")
		return
	}

	user, err := s.strategy.Authenticate(ctx, code, "")
	if err != nil {
		if s.rejected != nil && errors.Is(err, s.rejected) {
			writeError(w, http.StatusForbidden, "user rejected")
			return
		}
		s.logger.ErrorContext(ctx, "authentication failed", slog.Any("error", err))
		writeError(w, http.StatusBadGateway, "authentication failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
