// Package rejestr implements a thin authenticated client for the rejestr.io API v2.
package rejestr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// maxBodySnippet bounds how much of a rejected response body ends up in error text.
const maxBodySnippet = 200

// RemoteError describes a failed call to the rejestr.io API. Network failures
// and non-2xx statuses both map here; callers do not distinguish them further.
type RemoteError struct {
	Endpoint string
	Status   int // zero when the request never reached the remote
	Body     string
	Cause    error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		if e.Body != "" {
			return fmt.Sprintf("rejestr.io returned status %d for %q: %s", e.Status, e.Endpoint, e.Body)
		}
		return fmt.Sprintf("rejestr.io returned status %d for %q", e.Status, e.Endpoint)
	}
	return fmt.Sprintf("rejestr.io request for %q failed: %v", e.Endpoint, e.Cause)
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}

// Client issues authenticated GET requests against a fixed API origin. It is
// immutable after construction and safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
}

// New creates a client for the given origin. The API key is attached verbatim
// as the Authorization header on every request; the remote expects the bare
// key, not a Bearer scheme.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// Get performs GET {base}/{endpoint} and returns the JSON body untouched.
// The endpoint is relative and must not start with a slash. Every call runs
// on its own http.Client, released when the call completes; no timeout or
// retry policy is applied.
func (c *Client) Get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	requestID := uuid.New().String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, &RemoteError{Endpoint: endpoint, Cause: err}
	}
	req.Header.Set("Authorization", c.apiKey)

	log.Debug("rejestr.io request", "id", requestID, "endpoint", endpoint)

	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		log.Error("rejestr.io request failed", "id", requestID, "endpoint", endpoint, "error", err)
		return nil, &RemoteError{Endpoint: endpoint, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("rejestr.io response unreadable", "id", requestID, "endpoint", endpoint, "error", err)
		return nil, &RemoteError{Endpoint: endpoint, Status: resp.StatusCode, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("rejestr.io request rejected", "id", requestID, "endpoint", endpoint, "status", resp.StatusCode)
		return nil, &RemoteError{Endpoint: endpoint, Status: resp.StatusCode, Body: snippet(body)}
	}

	if !json.Valid(body) {
		return nil, &RemoteError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Body:     snippet(body),
			Cause:    fmt.Errorf("response is not valid JSON"),
		}
	}

	log.Debug("rejestr.io response", "id", requestID, "status", resp.StatusCode, "bytes", len(body))

	return json.RawMessage(body), nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxBodySnippet {
		return s[:maxBodySnippet] + "..."
	}
	return s
}
