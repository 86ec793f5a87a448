package stego

// Option configures a single codec call.
type Option func(*config)

type config struct {
	seed string
}

// WithSeed visits pixels in the deterministic permuted order derived from
// seed instead of row-major order. The same seed always yields the same
// order, so embed and extract must be given identical seeds to be inverses
// of each other. The empty seed keeps the identity order and is the
// default.
func WithSeed(seed string) Option {
	return func(c *config) { c.seed = seed }
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
