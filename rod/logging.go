package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/pjbackcoding/profilepulse"
)

// Ensure LoggingInjector implements profilepulse.Injector.
var _ profilepulse.Injector = (*LoggingInjector)(nil)

// LoggingInjector wraps an Injector with debug logging.
type LoggingInjector struct {
	next   profilepulse.Injector
	logger *slog.Logger
}

// NewLoggingInjector creates a new LoggingInjector.
func NewLoggingInjector(next profilepulse.Injector, logger *slog.Logger) *LoggingInjector {
	return &LoggingInjector{next: next, logger: logger}
}

// Inject logs the injection outcome and delegates to the wrapped injector.
func (i *LoggingInjector) Inject(ctx context.Context, text string) (err error) {
	defer func(begin time.Time) {
		i.logger.Info("inject",
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Inject(ctx, text)
}
