package profilepulse

import "context"

// Generator turns an extracted Profile into a short summary text.
type Generator interface {
	// Generate returns the summary for the given profile. Failure modes:
	// EUNAVAILABLE when the remote service rejects or fails the request,
	// EINTERNAL when it answers with nothing usable.
	Generate(ctx context.Context, profile *Profile) (string, error)
}
