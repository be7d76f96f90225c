// Package llm turns remote chat-completion providers into a score judge.
// Provider packages underneath handle transport only; prompt construction,
// response parsing, and provider selection live here
package llm

import (
	"context"
	"strings"
	"time"

	"botscan/internal/adapters/llm/anthropic"
	"botscan/internal/adapters/llm/openrouter"
	perr "botscan/internal/platform/errors"
)

// Score is a remote model judgment, clamped to the wire contract
type Score struct {
	Value      int     `json:"score"`
	Confidence float64 `json:"confidence"`
}

// Judge asks a remote model to rate one text. Implementations must be safe
// for concurrent use
type Judge interface {
	Judge(ctx context.Context, text string) (Score, error)
	Name() string
	Model() string
}

// completer is the transport seam the provider packages satisfy
type completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Config selects and configures a provider. An explicit Provider wins over
// auto-detection; auto-detection prefers anthropic, then openrouter, then none
type Config struct {
	Provider string // "anthropic", "openrouter", "none", or "" for auto

	AnthropicKey   string
	AnthropicModel string

	OpenRouterKey   string
	OpenRouterModel string

	Timeout time.Duration
}

// New builds the configured judge. A nil Judge with nil error means no
// provider is configured and the caller runs heuristics-only
func New(cfg Config) (Judge, error) {
	switch strings.ToLower(cfg.Provider) {
	case "anthropic", "claude":
		if cfg.AnthropicKey == "" {
			return nil, perr.InvalidArgf("provider anthropic selected but no anthropic key configured")
		}
		return newAnthropic(cfg), nil
	case "openrouter":
		if cfg.OpenRouterKey == "" {
			return nil, perr.InvalidArgf("provider openrouter selected but no openrouter key configured")
		}
		return newOpenRouter(cfg), nil
	case "none":
		return nil, nil
	case "":
		if cfg.AnthropicKey != "" {
			return newAnthropic(cfg), nil
		}
		if cfg.OpenRouterKey != "" {
			return newOpenRouter(cfg), nil
		}
		return nil, nil
	default:
		return nil, perr.InvalidArgf("unknown llm provider %q", cfg.Provider)
	}
}

func newAnthropic(cfg Config) Judge {
	c := anthropic.NewClient(anthropic.Options{
		APIKey:  cfg.AnthropicKey,
		Model:   cfg.AnthropicModel,
		Timeout: cfg.Timeout,
	})
	return &judge{name: "anthropic", model: c.Model(), c: c}
}

func newOpenRouter(cfg Config) Judge {
	c := openrouter.NewClient(openrouter.Options{
		APIKey:  cfg.OpenRouterKey,
		Model:   cfg.OpenRouterModel,
		Timeout: cfg.Timeout,
	})
	return &judge{name: "openrouter", model: c.Model(), c: c}
}

type judge struct {
	name  string
	model string
	c     completer
}

func (j *judge) Name() string  { return j.name }
func (j *judge) Model() string { return j.model }

func (j *judge) Judge(ctx context.Context, text string) (Score, error) {
	out, err := j.c.Complete(ctx, SystemPrompt, "Analyze this text for AI generation:\n\n"+text)
	if err != nil {
		return Score{}, err
	}
	return ParseScore(out)
}
