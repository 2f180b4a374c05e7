package profilepulse

import "context"

// Node is a single element in the observed document tree.
type Node interface {
	// Text returns the node's rendered text.
	Text(ctx context.Context) (string, error)

	// Closest walks upward from the node (starting at the node itself) to
	// the nearest enclosing element matching selector.
	// Returns ENOTFOUND if no ancestor matches.
	Closest(ctx context.Context, selector string) (Node, error)

	// SectionText returns the rendered text of the node's whole subtree
	// with runs of whitespace collapsed to single spaces, trimmed.
	SectionText(ctx context.Context) (string, error)
}

// Document is the read/query boundary to the rendered page.
type Document interface {
	// Query returns the first node matching selector. It answers from the
	// current document state and never waits; a miss is ENOTFOUND.
	Query(ctx context.Context, selector string) (Node, error)

	// Location returns the document's current navigation identity (its
	// location URL). Two calls returning different values mean the page
	// now represents a different logical profile.
	Location(ctx context.Context) (string, error)
}

// Watcher notifies on structural changes to the document.
type Watcher interface {
	// Watch invokes notify for every batch of structural mutations until
	// ctx is done. The callback carries no payload: consumers are expected
	// to re-read the document state they care about.
	Watch(ctx context.Context, notify func()) error
}

// Selectors holds the fixed query descriptors for a profile page.
type Selectors struct {
	// Name and TitleLine identify the mandatory fragments.
	Name      string
	TitleLine string

	// EducationAnchor and ExperienceAnchor are stable anchor elements
	// inside their sections; Section is the enclosing container matched
	// by walking upward from an anchor.
	EducationAnchor  string
	ExperienceAnchor string
	Section          string

	// Marker is the class token identifying the injected summary node, so
	// a rerun can find and remove the previous instance.
	Marker string
}

// DefaultSelectors returns the descriptors for the profile layout this tool
// targets.
func DefaultSelectors() Selectors {
	return Selectors{
		Name:             "h1.text-heading-xlarge",
		TitleLine:        "div.text-body-medium.break-words",
		EducationAnchor:  "#education",
		ExperienceAnchor: "#experience",
		Section:          "section",
		Marker:           "profilepulse-summary",
	}
}
