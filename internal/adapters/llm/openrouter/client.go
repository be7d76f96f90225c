// Package openrouter is a minimal chat-completions client for score judgments
package openrouter

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
	baseURLDefault = "https://openrouter.ai/api/v1"
	defaultTimeout = 20 * time.Second

	maxAttempts = 3
	retryBase   = 500 * time.Millisecond

	// identification headers openrouter asks integrators to send
	refererDefault = "https://botscan.local"
	titleDefault   = "botscan"
)

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	Model   string
	Referer string
	Title   string
	Timeout time.Duration
}

// Client talks to the OpenRouter chat completions API
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
	if o.Referer == "" {
		o.Referer = refererDefault
	}
	if o.Title == "" {
		o.Title = titleDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("openrouter"),
	}
}

// Model reports the configured model id
func (c *Client) Model() string { return c.opts.Model }

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Message responseMessage `json:"message"`
}

type responseMessage struct {
	Content string `json:"content"`
}

// Complete sends a system plus user turn and returns the model's text reply.
// Transient upstream failures (429, 5xx, transport errors) are retried
// with exponential backoff up to maxAttempts
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.opts.Model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.1,
		MaxTokens:   100,
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "openrouter marshal request failed")
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
			return "", perr.Wrapf(ctx.Err(), perr.ErrorCodeUpstream, "openrouter request cancelled")
		case <-time.After(d):
		}
	}
	return "", last
}

func (c *Client) once(ctx context.Context, body []byte) (text string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.opts.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", false, perr.Wrapf(err, perr.ErrorCodeUnknown, "openrouter new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	req.Header.Set("HTTP-Referer", c.opts.Referer)
	req.Header.Set("X-Title", c.opts.Title)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", ctx.Err() == nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "openrouter request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("model", c.opts.Model).
		Msg("openrouter http response")

	if resp.StatusCode != http.StatusOK {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retryable, perr.Upstreamf("openrouter status %d: %s", resp.StatusCode, string(tail))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", false, perr.Wrapf(err, perr.ErrorCodeUpstream, "openrouter bad response body")
	}
	if len(out.Choices) == 0 {
		return "", false, perr.Upstreamf("openrouter empty choices array")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), false, nil
}
