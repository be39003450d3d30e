package render

// Options is the immutable set of named toggles resolved once before
// traversal begins. Handlers consume it read-only; behavioral variants of
// the converter are parameterized here instead of through duplicate
// handler sets.
type Options struct {
	// Anchors controls whether section titles carry an HTML anchor so
	// internal references can link to them. The simple output profile
	// turns it off.
	Anchors bool
}

// DefaultOptions returns the standard output profile.
func DefaultOptions() Options {
	return Options{Anchors: true}
}
