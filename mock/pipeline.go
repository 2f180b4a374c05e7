package mock

import (
	"context"

	"github.com/pjbackcoding/profilepulse"
)

var _ profilepulse.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of profilepulse.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context) (*profilepulse.Profile, error)
}

func (e *Extractor) Extract(ctx context.Context) (*profilepulse.Profile, error) {
	return e.ExtractFn(ctx)
}

var _ profilepulse.Generator = (*Generator)(nil)

// Generator is a mock implementation of profilepulse.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, profile *profilepulse.Profile) (string, error)
}

func (g *Generator) Generate(ctx context.Context, profile *profilepulse.Profile) (string, error) {
	return g.GenerateFn(ctx, profile)
}

var _ profilepulse.Injector = (*Injector)(nil)

// Injector is a mock implementation of profilepulse.Injector.
type Injector struct {
	InjectFn func(ctx context.Context, text string) error
}

func (i *Injector) Inject(ctx context.Context, text string) error {
	return i.InjectFn(ctx, text)
}

var _ profilepulse.Watcher = (*Watcher)(nil)

// Watcher is a mock implementation of profilepulse.Watcher.
type Watcher struct {
	WatchFn func(ctx context.Context, notify func()) error
}

func (w *Watcher) Watch(ctx context.Context, notify func()) error {
	return w.WatchFn(ctx, notify)
}
