package meta

// Metadata holds settings shared between the generator orchestrator and the
// language-specific generators.
type Metadata struct {
	// Version is stamped into every generated file header.
	Version string
	// COutput overrides where C headers are written; empty means next to
	// the scanned package.
	COutput string
}

// File is one rendered output. Generators only render; the orchestrator
// decides whether to write or compare.
type File struct {
	Path    string
	Content []byte
}
