// Package httpclient wraps net/http with the analytics API conventions: a
// configured base URL, a bearer token read from persisted storage on every
// request, request ids and JSON bodies. It never retries and never caches;
// callers decide what a failure means.
package httpclient

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

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	apperrors "statdeck/internal/platform/errors"
	"statdeck/internal/platform/id"
)

const (
	HeaderRequestID = "X-Request-ID"
	maxErrorBody    = 4 << 10
)

// TokenSource yields the persisted bearer token, or "" when there is none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, body)
}

func (e *StatusError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return apperrors.ErrUnauthenticated
	case e.Status == http.StatusNotFound:
		return apperrors.ErrNotFound
	case e.Status >= 500:
		return apperrors.ErrUnavailable
	}
	return nil
}

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	tokens    TokenSource
	ids       id.Generator
	logger    *zap.Logger
}

func New(opts Options, tokens TokenSource, ids id.Generator, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ids == nil {
		ids = id.UUID{}
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = "statdeck"
	}
	return &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userAgent: ua,
		http:      &http.Client{Timeout: opts.Timeout},
		tokens:    tokens,
		ids:       ids,
		logger:    logger.Named("http"),
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	reqID := c.ids.New()
	req.Header.Set(HeaderRequestID, reqID)
	c.authorize(ctx, req)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.String("request_id", reqID), zap.Error(err))
		return fmt.Errorf("%s %s: %w: %v", method, path, apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", reqID),
		zap.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Method: method, Path: path, Status: resp.StatusCode, Body: string(raw)}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode %s: empty body", path)
		}
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// authorize attaches the bearer header when a token is persisted. A failed
// lookup is treated as no token so the request still goes out.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.Warn("token lookup failed, sending unauthenticated", zap.Error(err))
		return
	}
	if token == "" {
		return
	}
	(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req)
}
