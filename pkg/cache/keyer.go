package cache

// Keyer derives cache keys. Implementations must map equal inputs to equal
// keys and should map different inputs to different keys.
type Keyer interface {
	// GraphKey identifies a generated graph.
	GraphKey(shape string, opts GraphKeyOpts) string
	// ArtifactKey identifies a rendering of the graph whose JSON hashes to
	// graphHash.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// GraphKeyOpts lists every generation parameter that changes the output.
type GraphKeyOpts struct {
	Nodes      int    `json:"n,omitempty"`
	Edges      int    `json:"m,omitempty"`
	TreeNodes  int    `json:"tree_n,omitempty"`
	Cycles     int    `json:"cycles,omitempty"`
	Elongation *int   `json:"elongation,omitempty"`
	First      *int   `json:"first,omitempty"`
	Last       *int   `json:"last,omitempty"`
	Root       *int   `json:"root,omitempty"`
	Seed       uint64 `json:"seed"`
	Shuffle    string `json:"shuffle,omitempty"`
}

// ArtifactKeyOpts describes a rendered output.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Directed bool   `json:"directed,omitempty"`
	Detailed bool   `json:"detailed,omitempty"`
	Label    string `json:"label,omitempty"`
}

// DefaultKeyer hashes key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GraphKey returns "graph:<shape>:<hash>".
func (DefaultKeyer) GraphKey(shape string, opts GraphKeyOpts) string {
	return hashKey("graph:"+shape, opts)
}

// ArtifactKey returns "artifact:<hash>".
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}
