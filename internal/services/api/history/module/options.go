package module

import "botscan/internal/platform/config"

// Options holds configuration settings for the history module
type Options struct {
	DefaultLimit int
	MaxLimit     int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	hf := cfg.Prefix("CORE_HISTORY_")
	return Options{
		DefaultLimit: hf.MayInt("DEFAULT_LIMIT", 20),
		MaxLimit:     hf.MayInt("MAX_LIMIT", 100),
	}
}
