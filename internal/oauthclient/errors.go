package oauthclient

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("oauthclient: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("oauthclient: missing client secret")

	// ErrNilResponse is returned when the transport returns neither a response nor an error.
	ErrNilResponse = errors.New("oauthclient: nil response from provider")

	// ErrBodyTooLarge is returned when a protected resource response
	// exceeds the read limit.
	ErrBodyTooLarge = errors.New("oauthclient: response body too large")
)

// StatusError is returned by GetProtectedResource when the provider
// answers with a non-2xx status. Body holds the raw response payload.
type StatusError struct {
	Body       []byte
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("oauthclient: request returned status=%d body=%s", e.StatusCode, e.Body)
}
