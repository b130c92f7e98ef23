// Package api is the HTTP client for the Number Ninja backend. The
// backend owns session records and question generation; this client
// only moves JSON across the boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/numberninja/numberninja/internal/question"
)

// TokenSource supplies the bearer token attached to every request.
type TokenSource interface {
	IDToken(ctx context.Context) (string, error)
}

// StatusError is returned when the backend responds with a non-2xx
// status.
type StatusError struct {
	Code     int
	Endpoint string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: %s returned HTTP %d", e.Endpoint, e.Code)
}

// Client talks to the Number Ninja backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
}

// NewClient creates a Client for the given base URL (scheme + host,
// no trailing /api).
func NewClient(baseURL string, tokens TokenSource, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		log:     log.With().Str("component", "api").Logger(),
	}
}

// CreateSession registers a new play-through and returns its id.
func (c *Client) CreateSession(ctx context.Context, req CreateSessionRequest) (string, error) {
	var resp createSessionResponse
	if err := c.do(ctx, http.MethodPost, "/sessions/create", req, &resp); err != nil {
		return "", err
	}
	if resp.SessionID == "" {
		return "", fmt.Errorf("create session: empty session id in response")
	}
	return resp.SessionID, nil
}

// GetQuestions fetches the question batch for a session.
func (c *Client) GetQuestions(ctx context.Context, sessionID string) ([]question.RawQuestion, error) {
	var qs []question.RawQuestion
	if err := c.do(ctx, http.MethodGet, "/questions/"+sessionID+"/questions", nil, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// SubmitAnswers sends the reconciled answer list for a session.
func (c *Client) SubmitAnswers(ctx context.Context, sessionID string, answers []Answer) (*SubmitResult, error) {
	var res SubmitResult
	err := c.do(ctx, http.MethodPost, "/questions/"+sessionID+"/submit", submitAnswersRequest{Answers: answers}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// EndSession tells the backend a session ended early. Best-effort on
// the caller's side; the error is returned for logging only.
func (c *Client) EndSession(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodPost, "/sessions/"+sessionID+"/end", struct{}{}, nil)
}

// do performs one authenticated JSON round-trip. endpoint is the path
// under /api. body and out may be nil.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	token, err := c.tokens.IDToken(ctx)
	if err != nil {
		return fmt.Errorf("%s %s: resolve token: %w", method, endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("backend error response")
		return &StatusError{Code: resp.StatusCode, Endpoint: endpoint}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, endpoint, err)
	}
	return nil
}
