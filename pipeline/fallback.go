package pipeline

import (
	"context"
	"log/slog"

	"github.com/pjbackcoding/profilepulse"
)

// FallbackText is injected in place of a summary when generation fails.
const FallbackText = "Impossible de générer le résumé pour le moment."

// Ensure Fallback implements profilepulse.Generator.
var _ profilepulse.Generator = (*Fallback)(nil)

// Fallback wraps a Generator and degrades every failure to FallbackText,
// so the rest of the pipeline never observes a generation error. The
// underlying error is logged and otherwise dropped.
type Fallback struct {
	next   profilepulse.Generator
	logger *slog.Logger
}

// NewFallback creates a new Fallback around next.
func NewFallback(next profilepulse.Generator, logger *slog.Logger) *Fallback {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fallback{next: next, logger: logger}
}

// Generate delegates to the wrapped generator, substituting FallbackText
// on any error. It never fails.
func (f *Fallback) Generate(ctx context.Context, profile *profilepulse.Profile) (string, error) {
	text, err := f.next.Generate(ctx, profile)
	if err != nil {
		f.logger.Warn("generation failed, using fallback text",
			"code", profilepulse.ErrorCode(err),
			"error", err,
		)
		return FallbackText, nil
	}
	return text, nil
}
