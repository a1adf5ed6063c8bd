package vector

// DefaultEpsilon is the absolute per-element tolerance used by ApproxEqual
// and IsNormalised when no WithEpsilon option is given.
const DefaultEpsilon = 1e-6

// Config holds tolerance settings for approximate comparisons.
type Config struct {
	Epsilon float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the comparison defaults.
func DefaultConfig() Config {
	return Config{
		Epsilon: DefaultEpsilon,
	}
}

// WithEpsilon sets the absolute comparison tolerance.
// Non-positive values are ignored.
func WithEpsilon(eps float64) Option {
	return func(cfg *Config) {
		if eps > 0 {
			cfg.Epsilon = eps
		}
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
