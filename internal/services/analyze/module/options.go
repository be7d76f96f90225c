package module

import (
	"time"

	"botscan/internal/platform/config"
)

// Options holds configuration settings for the analyze module
type Options struct {
	MaxContentChars int
	JudgeTimeout    time.Duration
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("CORE_ANALYZE_")
	return Options{
		MaxContentChars: af.MayInt("MAX_CONTENT_CHARS", 50000),
		JudgeTimeout:    af.MayDuration("JUDGE_TIMEOUT", 20*time.Second),
	}
}
