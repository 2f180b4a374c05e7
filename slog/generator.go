// Package slog provides logging decorators for profilepulse services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pjbackcoding/profilepulse"
)

// Ensure LoggingGenerator implements profilepulse.Generator.
var _ profilepulse.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with timing logs for the remote call.
type LoggingGenerator struct {
	next   profilepulse.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next profilepulse.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate logs the generation outcome and delegates to the wrapped
// generator.
func (g *LoggingGenerator) Generate(ctx context.Context, profile *profilepulse.Profile) (text string, err error) {
	name := ""
	if profile != nil {
		name = profile.Name
	}
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"name", name,
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, profile)
}
