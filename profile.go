package profilepulse

import "context"

// Profile is the snapshot of text fragments extracted from a rendered
// profile page. It is created once per pipeline run and never mutated
// afterwards. Any field may be empty: name and title line come from
// elements that are expected to render eventually, while the education and
// experience blocks are legitimately absent from some profiles.
type Profile struct {
	Name       string
	TitleLine  string
	Education  string
	Experience string
}

// Extractor produces a Profile from the current document state.
type Extractor interface {
	// Extract assembles a Profile from the page. It fails with ETIMEOUT
	// when a mandatory fragment never renders; optional fragments degrade
	// to empty strings and never fail the extraction.
	Extract(ctx context.Context) (*Profile, error)
}
