// Package fintrack is a client for the FinTrack expense tracking API.
package fintrack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://178.156.165.80:8765/api"

// Client talks to the FinTrack API.
type Client struct {
	// HTTP is exposed so callers can install transport wrappers.
	HTTP *http.Client

	baseURL string
	token   string
}

// NewClient creates a client for the API at baseURL. An empty baseURL falls
// back to DefaultBaseURL. The token may be empty for unauthenticated calls.
func NewClient(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	return &Client{
		HTTP:    &http.Client{Transport: http.DefaultTransport},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}, nil
}

// SetToken replaces the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx response from the API. Body holds the parsed JSON
// body when the response declared one, otherwise the raw text.
type APIError struct {
	Status  int
	Message string
	Body    any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("fintrack: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("fintrack: unexpected status %d", e.Status)
}

// IsAuthError reports whether err is an API authorization failure (HTTP 401).
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// statusFlag normalizes the API's status field, which mixes boolean and
// string representations, into a single bool.
type statusFlag bool

func (s *statusFlag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = statusFlag(b)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("status is neither bool nor string: %s", data)
	}

	switch strings.ToLower(strings.TrimSpace(str)) {
	case "", "false", "error", "fail", "failure":
		*s = false
	default:
		*s = true
	}
	return nil
}

// FlexID accepts an identifier serialized as either a JSON number or string.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = FlexID(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("id is neither number nor string: %s", data)
	}
	*id = FlexID(s)
	return nil
}

func (id FlexID) String() string { return string(id) }

// DateRange bounds a query to inclusive YYYY-MM-DD dates. A nil range sends
// no dat_start/dat_end parameters.
type DateRange struct {
	Start string
	End   string
}

func (r *DateRange) values() url.Values {
	if r == nil {
		return nil
	}

	v := url.Values{}
	if r.Start != "" {
		v.Set("dat_start", r.Start)
	}
	if r.End != "" {
		v.Set("dat_end", r.End)
	}
	return v
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp, data)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}

	return nil
}

func newAPIError(resp *http.Response, data []byte) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var parsed map[string]any
		if err := json.Unmarshal(data, &parsed); err == nil {
			apiErr.Body = parsed
			if msg, ok := parsed["message"].(string); ok && msg != "" {
				apiErr.Message = msg
			} else if detail, ok := parsed["detail"].(string); ok && detail != "" {
				apiErr.Message = detail
			}
			return apiErr
		}
	}

	apiErr.Body = string(data)
	return apiErr
}
