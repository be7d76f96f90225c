// Package anthropic is a minimal Messages API client for score judgments
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	perr "botscan/internal/platform/errors"
	"botscan/internal/platform/logger"
)

const (
	baseURLDefault = "https://api.anthropic.com"
	modelDefault   = "claude-sonnet-4-5-20250929"
	defaultTimeout = 20 * time.Second

	maxAttempts = 3
	retryBase   = 500 * time.Millisecond

	apiVersion = "2023-06-01"

	// OAuth tokens need Bearer auth plus a beta header; plain API keys
	// go in x-api-key
	oauthPrefix = "sk-ant-oat01-"
	oauthBeta   = "oauth-2025-04-20"
)

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client talks to the Anthropic Messages API
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Model == "" {
		o.Model = modelDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("anthropic"),
	}
}

// Model reports the configured model id
func (c *Client) Model() string { return c.opts.Model }

type messagesRequest struct {
	Model       string    `json:"model"`
	System      string    `json:"system"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Text string `json:"text"`
}

// Complete sends one user turn and returns the model's text reply.
// Transient upstream failures (429, 5xx, transport errors) are retried
// with exponential backoff up to maxAttempts
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(messagesRequest{
		Model:       c.opts.Model,
		System:      system,
		Messages:    []message{{Role: "user", Content: user}},
		Temperature: 0.1,
		MaxTokens:   100,
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "anthropic marshal request failed")
	}

	var last error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, retryable, err := c.once(ctx, body)
		if err == nil {
			return text, nil
		}
		last = err
		if !retryable || attempt == maxAttempts {
			break
		}
		// backoff with jitter, capped at 10s
		d := min(retryBase<<(attempt-1), 10*time.Second)
		d = d/2 + time.Duration(rand.Int63n(int64(d/2)))
		select {
		case <-ctx.Done():
			return "", perr.Wrapf(ctx.Err(), perr.ErrorCodeUpstream, "anthropic request cancelled")
		case <-time.After(d):
		}
	}
	return "", last
}

func (c *Client) once(ctx context.Context, body []byte) (text string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", false, perr.Wrapf(err, perr.ErrorCodeUnknown, "anthropic new request failed")
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("anthropic-version", apiVersion)
	if strings.HasPrefix(c.opts.APIKey, oauthPrefix) {
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
		req.Header.Set("anthropic-beta", oauthBeta)
	} else {
		req.Header.Set("x-api-key", c.opts.APIKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", ctx.Err() == nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "anthropic request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("model", c.opts.Model).
		Msg("anthropic http response")

	if resp.StatusCode != http.StatusOK {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retryable, perr.Upstreamf("anthropic status %d: %s", resp.StatusCode, string(tail))
	}

	var out messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", false, perr.Wrapf(err, perr.ErrorCodeUpstream, "anthropic bad response body")
	}
	if len(out.Content) == 0 {
		return "", false, perr.Upstreamf("anthropic empty content array")
	}
	return strings.TrimSpace(out.Content[0].Text), false, nil
}
