package libevents

type (
	config struct {
		logger Logger
		name   string
	}

	// Option configures a Registry at construction time.
	Option func(*config)
)

// WithLogger sets the logger the registry reports its activity to. Nil keeps the
// default no-op logger.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithName tags every log entry of the registry with a "registry" field.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

func newConfig(opts []Option) config {
	c := config{logger: NewNoopLogger()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
