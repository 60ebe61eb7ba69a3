package http

import (
	"net/http"
)

type Client struct {
	client         *http.Client
	defaultHeaders map[string]string
}

// NewHttpClient returns a JSON client backed by a plain http.Client, so the
// transport's default timeout behaviour applies.
func NewHttpClient() *Client {
	return NewHttpClientWith(&http.Client{})
}

// NewHttpClientWith wraps an existing http.Client, e.g. httptest.Server.Client().
func NewHttpClientWith(c *http.Client) *Client {
	if c == nil {
		c = &http.Client{}
	}
	return &Client{
		client: c,
		defaultHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

func (hc *Client) applyDefaultHeaders(req *http.Request) {
	for key, value := range hc.defaultHeaders {
		// Only set default header if it's not already set
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}
}

type RequestOption func(*http.Request)

func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value) // We use Set() to overwrite existing headers
	}
}

func WithBearerToken(token string) RequestOption {
	return WithHeader("Authorization", "Bearer "+token)
}
