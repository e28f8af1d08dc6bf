package graph

// Option configures an optional generator parameter. Generators ignore
// options that do not apply to them.
type Option func(*config)

type config struct {
	elongation    int
	hasElongation bool
	first, last   int
	hasFirst      bool
	hasLast       bool
	root          int
}

func newConfig(opts []Option) config {
	cfg := config{root: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithElongation builds random trees by weighted parent selection instead
// of uniform edge rejection. Positive values stretch the tree toward a path,
// negative values flatten it toward a star, and zero picks parents uniformly.
func WithElongation(e int) Option {
	return func(c *config) {
		c.elongation = e
		c.hasElongation = true
	}
}

// WithFirst forces the first node of a path.
func WithFirst(v int) Option {
	return func(c *config) {
		c.first = v
		c.hasFirst = true
	}
}

// WithLast forces the last node of a path.
func WithLast(v int) Option {
	return func(c *config) {
		c.last = v
		c.hasLast = true
	}
}

// WithRoot sets the center of a star. The default is node 1.
func WithRoot(v int) Option {
	return func(c *config) { c.root = v }
}
