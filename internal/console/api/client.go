// Package api implements the REST client for the channeling backend. Every
// call attaches the session's bearer token and a request id, enforces the
// configured timeout, and maps HTTP 401 to common.ErrUnauthorized so the
// console has a single place to react to an expired session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medichannel/admincli/internal/common"
	"github.com/medichannel/admincli/internal/logging"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// return means "no token" and the Authorization header is omitted.
type TokenSource func() string

type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	timeout time.Duration
	log     logging.Logger
}

func New(baseURL string, timeout time.Duration, token TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		token:   token,
		timeout: timeout,
		log:     log.With("component", "api"),
	}
}

// envelope is the backend's standard wrapper for collection and action
// responses: {"code": 200, "message": "...", "data": ...}.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// failure is the body of a non-2xx response.
type failure struct {
	Message string `json:"message"`
}

// do performs one request. body (if non-nil) is JSON-encoded; out (if
// non-nil) receives the decoded response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err.Error())
		return fmt.Errorf("%s %s: %w", method, path, common.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s %s: %w", method, path, common.ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var f failure
		if err := json.NewDecoder(resp.Body).Decode(&f); err == nil && f.Message != "" {
			return fmt.Errorf("%s %s: %s", method, path, f.Message)
		}
		return fmt.Errorf("%s %s: unexpected status %s", method, path, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// getData performs a GET and unwraps the {code,message,data} envelope into out.
func (c *Client) getData(ctx context.Context, path string, query url.Values, out any) error {
	var env envelope
	if err := c.do(ctx, http.MethodGet, path, query, nil, &env); err != nil {
		return err
	}
	if env.Code != 0 && (env.Code < 200 || env.Code > 299) {
		return fmt.Errorf("GET %s: %s", path, env.Message)
	}
	if out == nil || env.Data == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

func idQuery(id int64) url.Values {
	return url.Values{"id": []string{fmt.Sprintf("%d", id)}}
}
