// Package api implements the outbound ports against the booking backend's
// HTTP interface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reservaplus/booking-client/internal/core/domain"
)

// retryBaseDelay is the first backoff step; each retry doubles it.
const retryBaseDelay = 200 * time.Millisecond

// TokenSource supplies the current bearer token. An empty token means the
// request goes out anonymously.
type TokenSource interface {
	Token() string
}

// Client is the shared HTTP transport for all gateways. Every request gets a
// deadline, a generated X-Request-ID and, when a session exists, the bearer
// token. Idempotent (GET) requests are retried with exponential backoff on
// transport failures; mutations are issued exactly once.
type Client struct {
	baseURL string
	http    *http.Client
	retries int
	log     zerolog.Logger

	tokens         TokenSource
	onUnauthorized func()
}

func NewClient(baseURL string, timeout time.Duration, retries int, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if retries < 0 {
		retries = 0
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		retries: retries,
		log:     log.With().Str("component", "api").Logger(),
	}
}

// BindSession wires the token source and the 401 hook. Called once during
// startup after the session store exists; requests made before binding go
// out anonymously.
func (c *Client) BindSession(tokens TokenSource, onUnauthorized func()) {
	c.tokens = tokens
	c.onUnauthorized = onUnauthorized
}

// get issues a GET with retry-with-backoff on transport failures.
func (c *Client) get(ctx context.Context, path string, out any) error {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << (attempt - 1)
			c.log.Debug().Str("path", path).Int("attempt", attempt).Dur("delay", delay).Msg("retrying request")
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", domain.ErrNetwork, ctx.Err())
			case <-time.After(delay):
			}
		}
		err := c.do(ctx, http.MethodGet, path, nil, out)
		if err == nil || !isTransportError(err) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// send issues a mutating request exactly once. A transport failure leaves
// the outcome unknown, so the caller retries by repeating the user action.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, method, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	authenticated := false
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
			authenticated = true
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	detail := readDetail(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized && authenticated && c.onUnauthorized != nil {
		// The server no longer accepts the stored token; drop the session.
		c.onUnauthorized()
	}
	return statusError(resp.StatusCode, authenticated, detail)
}

// errorEnvelope is the backend's error body: {"detail": "<message>"}.
type errorEnvelope struct {
	Detail string `json:"detail"`
}

func readDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Detail == "" {
		return strings.TrimSpace(string(data))
	}
	return envelope.Detail
}

// statusError classifies an HTTP rejection into the domain error taxonomy,
// carrying the server-provided detail verbatim when present.
func statusError(status int, authenticated bool, detail string) error {
	var sentinel error
	switch {
	case status == http.StatusUnauthorized && !authenticated:
		sentinel = domain.ErrInvalidCredentials
	case status == http.StatusUnauthorized:
		sentinel = domain.ErrUnauthenticated
	case status == http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case status == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case status == http.StatusConflict:
		sentinel = domain.ErrConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		sentinel = domain.ErrValidation
	case status >= 500:
		sentinel = domain.ErrServerFault
	default:
		sentinel = domain.ErrServerFault
	}
	if detail == "" {
		return fmt.Errorf("%w (http %d)", sentinel, status)
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}

// isTransportError reports whether the request never produced a server
// answer, the only case a GET is retried for.
func isTransportError(err error) bool {
	return err != nil && errors.Is(err, domain.ErrNetwork)
}
