package rod

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pjbackcoding/profilepulse"
)

// bindingName is the page-global function the injected observer calls to
// reach Go.
const bindingName = "__profilepulse_notify"

// watchJS installs a MutationObserver over the whole document and reports
// each batch of structural changes through the runtime binding. The
// observer survives SPA navigations because those never reload the page.
const watchJS = `() => {
	if (window.__profilepulse_observer) {
		return;
	}
	const observer = new MutationObserver(() => {
		window.` + bindingName + `("mutated");
	});
	observer.observe(document.documentElement, { childList: true, subtree: true });
	window.__profilepulse_observer = observer;
}`

// Ensure Watcher implements profilepulse.Watcher at compile time.
var _ profilepulse.Watcher = (*Watcher)(nil)

// Watcher bridges the page's MutationObserver back into Go through a CDP
// runtime binding, the same mechanism devtools extensions use.
type Watcher struct {
	page   *rod.Page
	logger *slog.Logger
}

// NewWatcher creates a Watcher for an open page.
func NewWatcher(page *rod.Page, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{page: page, logger: logger}
}

// Watch installs the observer and invokes notify for every mutation batch
// until ctx is done. It reports ctx.Err() on cancellation so callers can
// distinguish shutdown from subscription failure.
func (w *Watcher) Watch(ctx context.Context, notify func()) error {
	page := w.page.Context(ctx)

	if err := (proto.RuntimeAddBinding{Name: bindingName}).Call(page); err != nil {
		return fmt.Errorf("adding runtime binding: %w", err)
	}

	if _, err := page.Eval(watchJS); err != nil {
		return fmt.Errorf("installing mutation observer: %w", err)
	}

	w.logger.Debug("mutation watch armed")

	wait := page.EachEvent(func(e *proto.RuntimeBindingCalled) {
		if e.Name != bindingName {
			return
		}
		notify()
	})
	wait()

	return ctx.Err()
}
