package profilepulse

import "context"

// Injector places generated text into the document.
type Injector interface {
	// Inject ensures exactly one summary marker exists in the document,
	// located immediately after the title line, containing text. Reruns
	// replace the previous marker instead of accumulating. If the title
	// line is absent the injection is silently skipped.
	Inject(ctx context.Context, text string) error
}
