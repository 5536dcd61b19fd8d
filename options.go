package interruptor

// options holds configuration resolved from Option values at New time.
type options struct {
	logger         Logger
	spinIterations int
	hooks          *interruptorTestHooks
}

// Option configures an Interruptor constructed via New.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

// WithLogger sets the Logger this interruptor logs through, overriding
// the package-level default logger set via SetStructuredLogger.
func WithLogger(logger Logger) Option {
	return optionFunc(func(o *options) { o.logger = logger })
}

// WithSpinIterations overrides the number of iterations Send spins
// before falling back to a condition wait. n <= 0 restores the default
// (defaultSpinIterations).
func WithSpinIterations(n int) Option {
	return optionFunc(func(o *options) { o.spinIterations = n })
}

// withTestHooks installs deterministic interleaving hooks, for use by
// this package's own tests only.
func withTestHooks(hooks *interruptorTestHooks) Option {
	return optionFunc(func(o *options) { o.hooks = hooks })
}

func resolveOptions(opts []Option) *options {
	cfg := &options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(cfg)
	}
	return cfg
}
