package acf

import "github.com/cwbudde/algo-timeseries/dsp/conv"

// Config defines configuration for the autocorrelation computation.
type Config struct {
	RemoveMean        bool
	PaddingCorrection bool
	Normalize         bool
	Mode              conv.Mode
	Direct            bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default configuration: mean removal and padding
// correction on, normalization off, full-mode convolution.
func DefaultConfig() Config {
	return Config{
		RemoveMean:        true,
		PaddingCorrection: true,
		Mode:              conv.ModeFull,
	}
}

// WithoutMeanRemoval correlates the series as is instead of its
// fluctuations around the mean.
func WithoutMeanRemoval() Option {
	return func(cfg *Config) {
		cfg.RemoveMean = false
	}
}

// WithoutPaddingCorrection skips the zero-padding bias compensation.
// Appropriate for periodic signals.
func WithoutPaddingCorrection() Option {
	return func(cfg *Config) {
		cfg.PaddingCorrection = false
	}
}

// WithNormalize divides the result by its zero-lag value so ACF[0] is 1.
func WithNormalize() Option {
	return func(cfg *Config) {
		cfg.Normalize = true
	}
}

// WithMode selects the convolution output mode. Valid mode performs no
// zero padding and yields a shorter result.
func WithMode(m conv.Mode) Option {
	return func(cfg *Config) {
		cfg.Mode = m
	}
}

// WithDirectConvolution forces the direct time-domain convolution path
// instead of automatic algorithm selection.
func WithDirectConvolution() Option {
	return func(cfg *Config) {
		cfg.Direct = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
