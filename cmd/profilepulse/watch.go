package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pjbackcoding/profilepulse"
	ppopenai "github.com/pjbackcoding/profilepulse/openai"
	"github.com/pjbackcoding/profilepulse/pipeline"
	pprod "github.com/pjbackcoding/profilepulse/rod"
	ppslog "github.com/pjbackcoding/profilepulse/slog"
)

// Run wires the pipeline over a live browser page and watches it until
// interrupted.
func (c *WatchCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := deps.Logger

	var opts []pprod.BrowserOption
	if c.ControlURL != "" {
		opts = append(opts, pprod.WithControlURL(c.ControlURL))
	}
	if c.Headful {
		opts = append(opts, pprod.WithHeadful())
	}
	if c.Stealth {
		opts = append(opts, pprod.WithStealth())
	}

	browser, err := pprod.NewBrowser(opts...)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.OpenPage(ctx, c.URL)
	if err != nil {
		return fmt.Errorf("opening %q: %w", c.URL, err)
	}
	defer page.Close()

	selectors := profilepulse.DefaultSelectors()
	doc := pprod.NewDocument(page)

	extractor := &pipeline.Extractor{
		Doc:       doc,
		Waiter:    &pipeline.Waiter{Doc: doc, Interval: c.Interval},
		Selectors: selectors,
		Warmup:    c.Warmup,
		Timeout:   c.Timeout,
		Logger:    logger,
	}

	generator := pipeline.NewFallback(
		ppslog.NewLoggingGenerator(
			ppopenai.NewGenerator(ppopenai.NewClient(c.APIKey, c.BaseURL), c.Model),
			logger,
		),
		logger,
	)

	runner := &pipeline.Runner{
		Doc:       doc,
		Extractor: extractor,
		Generator: generator,
		Injector:  pprod.NewLoggingInjector(pprod.NewInjector(page, selectors), logger),
		Watcher:   pprod.NewWatcher(page, logger),
		Logger:    logger,
	}

	if c.Once {
		return runner.Run(ctx)
	}

	logger.Info("watching", "url", c.URL)
	if err := runner.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
