package correl

type config struct {
	stride      int
	diagnostics bool
	sink        func(Warning)
}

// Option configures the correlation-time estimator.
type Option func(*config)

func defaultConfig() config {
	return config{stride: 100}
}

// WithStride sets the subsampling stride: only every n-th datapoint is
// analyzed. Larger strides speed up the computation at the cost of lag
// resolution. Values below 1 are ignored.
func WithStride(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.stride = n
		}
	}
}

// WithDiagnostics attaches the truncated abscissa and ACF arrays used for
// the integration to the result.
func WithDiagnostics() Option {
	return func(cfg *config) {
		cfg.diagnostics = true
	}
}

// WithWarningSink installs a callback invoked on advisory conditions such
// as a low effective sample count. Warnings never alter the numeric result;
// without a sink they are silently discarded.
func WithWarningSink(sink func(Warning)) Option {
	return func(cfg *config) {
		cfg.sink = sink
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
