package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// StatusError is returned when the remote side answers with anything but 200.
type StatusError struct {
	Code   int
	Status string
	Body   []byte
}

func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("unexpected status %s", e.Status)
	}
	return fmt.Sprintf("unexpected status %s: %s", e.Status, e.Body)
}

func (hc *Client) Post(ctx context.Context, url string, body io.Reader, opts ...RequestOption) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	hc.applyDefaultHeaders(req)

	for _, opt := range opts {
		opt(req)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			log.Printf("closing response body: %v", err)
		}
	}(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: respBody}
	}

	return respBody, nil
}

// PostJSON marshals payload as the request body.
func (hc *Client) PostJSON(ctx context.Context, url string, payload any, opts ...RequestOption) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return hc.Post(ctx, url, bytes.NewReader(reqBody), opts...)
}
