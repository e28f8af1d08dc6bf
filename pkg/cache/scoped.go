package cache

// ScopedKeyer wraps a Keyer with a prefix so several tools or versions can
// share one backend without colliding.
//
// Example usage:
//
//	// Keys written by this build only
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "graphgen:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GraphKey generates a prefixed key for generated graphs.
func (k *ScopedKeyer) GraphKey(shape string, opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(shape, opts)
}

// ArtifactKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, opts)
}
