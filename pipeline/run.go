package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pjbackcoding/profilepulse"
	"golang.org/x/sync/errgroup"
)

// State identifies the Runner's position within a pipeline run.
type State string

// Runner states. Watching doubles as the resting state from which the next
// run is triggered.
const (
	StateIdle       State = "idle"
	StateExtracting State = "extracting"
	StateGenerating State = "generating"
	StateInjecting  State = "injecting"
	StateWatching   State = "watching"
)

// Runner sequences extraction, generation, and injection, and re-runs the
// pipeline whenever the document navigates to a different profile.
type Runner struct {
	Doc       profilepulse.Document
	Extractor profilepulse.Extractor
	Generator profilepulse.Generator
	Injector  profilepulse.Injector
	Watcher   profilepulse.Watcher
	Logger    *slog.Logger

	// lastLocation is the navigation identity of the most recently handled
	// run. Only the watch loop goroutine touches it after Watch starts.
	lastLocation string
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// Run executes one full pipeline pass: extract, generate, inject.
// Stages run strictly in sequence. An extraction failure aborts the run;
// generation is expected to degrade to fallback text on its own (see
// Fallback); injection failures are logged and do not fail the run.
func (r *Runner) Run(ctx context.Context) error {
	logger := r.logger().With("run", uuid.NewString())

	logger.Info("run starting", "state", StateExtracting)
	profile, err := r.Extractor.Extract(ctx)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	logger.Info("profile extracted", "name", profile.Name, "state", StateGenerating)
	summary, err := r.Generator.Generate(ctx, profile)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	logger.Info("summary generated", "chars", len(summary), "state", StateInjecting)
	if err := r.Injector.Inject(ctx, summary); err != nil {
		logger.Warn("injection skipped", "error", err)
	}

	logger.Info("run complete", "state", StateWatching)
	return nil
}

// Watch runs the pipeline once for the current page, then re-runs it each
// time the document's location changes. Mutation notifications that leave
// the location unchanged (content churn within the same profile, lazy
// loads) are ignored.
//
// Runs execute serially on the watch goroutine. Notifications arriving
// while a run is in progress coalesce: at most one rerun is pending, and it
// observes whatever location the document has by the time it is handled. A
// failed run never disarms the watch.
//
// Watch blocks until ctx is done or the underlying mutation subscription
// fails, and reports ctx.Err() on cancellation.
func (r *Runner) Watch(ctx context.Context) error {
	loc, err := r.Doc.Location(ctx)
	if err != nil {
		return fmt.Errorf("reading initial location: %w", err)
	}
	r.lastLocation = loc

	if err := r.Run(ctx); err != nil {
		r.logger().Error("run failed", "location", loc, "error", err)
	}

	pings := make(chan struct{}, 1)
	notify := func() {
		select {
		case pings <- struct{}{}:
		default:
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.Watcher.Watch(gctx, notify)
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-pings:
				r.handleMutation(gctx)
			}
		}
	})
	return g.Wait()
}

// handleMutation decides whether a mutation batch represents a navigation
// and reruns the pipeline if it does.
func (r *Runner) handleMutation(ctx context.Context) {
	current, err := r.Doc.Location(ctx)
	if err != nil {
		r.logger().Warn("reading location", "error", err)
		return
	}
	if current == r.lastLocation {
		return
	}
	r.lastLocation = current

	r.logger().Info("navigation detected", "location", current)
	if err := r.Run(ctx); err != nil {
		r.logger().Error("run failed", "location", current, "error", err)
	}
}
