package weibo

import (
	"errors"

	"github.com/dmitrymomot/weibo/internal/oauthclient"
)

var (
	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = oauthclient.ErrMissingClientID

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = oauthclient.ErrMissingClientSecret

	// ErrMissingVerify is returned when New is called without a verify callback.
	ErrMissingVerify = errors.New("weibo: missing verify callback")

	// ErrFetchFailed matches every *InternalOAuthError via errors.Is.
	ErrFetchFailed = errors.New("weibo: failed to fetch from provider")

	// ErrDecodeFailed is returned when a provider response is not valid JSON.
	// It is joined with the underlying encoding/json error and is never
	// wrapped in an *InternalOAuthError.
	ErrDecodeFailed = errors.New("weibo: failed to decode response")

	// ErrUserRejected is returned by Authenticate when the verify callback
	// returns neither a user nor an error.
	ErrUserRejected = errors.New("weibo: user rejected by verify callback")
)

// InternalOAuthError wraps a transport or HTTP-level failure talking to
// Weibo. Message may be empty; Err is the underlying cause.
type InternalOAuthError struct {
	Err     error
	Message string
}

func (e *InternalOAuthError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = ErrFetchFailed.Error()
	} else {
		msg = "weibo: " + msg
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *InternalOAuthError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFetchFailed.
func (e *InternalOAuthError) Is(target error) bool {
	return target == ErrFetchFailed
}

func newInternalOAuthError(message string, err error) error {
	return &InternalOAuthError{Message: message, Err: err}
}
