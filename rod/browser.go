// Package rod implements the document boundary over Chrome browser
// automation: live-page queries, summary injection, and the mutation
// subscription that drives pipeline reruns.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Browser owns the Chrome connection used to observe a profile page.
// Close must be called when the Browser is no longer needed.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher // nil when attached to an external browser
	stealth  bool
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithControlURL attaches to an already-running browser at the given
// DevTools URL instead of launching one.
func WithControlURL(u string) BrowserOption {
	return func(b *Browser) {
		b.browser = rod.New().ControlURL(u)
	}
}

// WithHeadful launches the browser with a visible window. Useful when the
// operator wants to watch injections happen, and for sites that block
// headless fingerprints outright.
func WithHeadful() BrowserOption {
	return func(b *Browser) {
		b.launcher = launcher.New().Headless(false)
	}
}

// WithStealth opens pages with stealth evasions applied. Profile sites
// fingerprint automation aggressively.
func WithStealth() BrowserOption {
	return func(b *Browser) {
		b.stealth = true
	}
}

// NewBrowser launches a headless Chrome browser (or attaches to an
// external one, see WithControlURL) and connects to it.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...BrowserOption) (*Browser, error) {
	b := &Browser{}
	for _, opt := range opts {
		opt(b)
	}

	if b.browser != nil {
		// Attached mode.
		if err := b.browser.Connect(); err != nil {
			return nil, fmt.Errorf("connecting to browser: %w", err)
		}
		return b, nil
	}

	if b.launcher == nil {
		b.launcher = launcher.New().Headless(true)
	}
	u, err := b.launcher.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	b.browser = rod.New().ControlURL(u)
	if err := b.browser.Connect(); err != nil {
		b.launcher.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return b, nil
}

// OpenPage navigates a fresh page to url and waits for the load event,
// which is the pipeline's activation signal.
func (b *Browser) OpenPage(ctx context.Context, url string) (*rod.Page, error) {
	var page *rod.Page
	var err error
	if b.stealth {
		page, err = stealth.Page(b.browser)
	} else {
		page, err = b.browser.Page(proto.TargetCreateTarget{})
	}
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		page.Close()
		return nil, fmt.Errorf("navigating to %q: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		page.Close()
		return nil, fmt.Errorf("waiting for load: %w", err)
	}

	return page, nil
}

// Close releases browser resources.
func (b *Browser) Close() error {
	return b.browser.Close()
}
