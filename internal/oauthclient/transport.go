package oauthclient

import "net/http"

// headerTransport sets a fixed header set on every outgoing request.
// Headers already present on the request are left untouched.
type headerTransport struct {
	base   http.RoundTripper
	header http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.header) == 0 {
		return t.base.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	for k, v := range t.header {
		if _, ok := r.Header[k]; ok {
			continue
		}
		r.Header[k] = append([]string(nil), v...)
	}
	return t.base.RoundTrip(r)
}

// wrapClient returns a shallow copy of base whose transport injects header.
func wrapClient(base *http.Client, header http.Header) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}
	rt := base.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}

	c := *base
	c.Transport = &headerTransport{base: rt, header: header.Clone()}
	return &c
}
