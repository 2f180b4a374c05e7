// Package pipeline provides the extraction/generation/injection
// orchestration. It coordinates waiting for the page to render, fragment
// extraction, the summary round trip, injection, and the navigation watch
// that re-runs the whole sequence.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pjbackcoding/profilepulse"
)

// Extraction timing defaults.
const (
	// DefaultWarmup is the pause before the first query. The target pages
	// render profile content well after the load event, with no ready
	// signal to hook.
	DefaultWarmup = 3 * time.Second

	// DefaultAwaitTimeout bounds the wait for each mandatory fragment.
	DefaultAwaitTimeout = 10 * time.Second
)

// Ensure Extractor implements profilepulse.Extractor at compile time.
var _ profilepulse.Extractor = (*Extractor)(nil)

// Extractor assembles a Profile from the rendered page.
//
// Mandatory fragments (name, title line) go through the Waiter because the
// page is known to eventually render them; optional fragments (education,
// experience) use a single immediate query because their absence is a
// legitimate profile state, not a loading race.
type Extractor struct {
	Doc       profilepulse.Document
	Waiter    *Waiter
	Selectors profilepulse.Selectors

	// Warmup is the fixed pause before extraction starts.
	// Defaults to DefaultWarmup.
	Warmup time.Duration

	// Timeout bounds each mandatory-fragment wait.
	// Defaults to DefaultAwaitTimeout.
	Timeout time.Duration

	Logger *slog.Logger
}

// Extract produces the profile snapshot for the current page state.
// A mandatory fragment that never renders fails the whole extraction with
// ETIMEOUT; optional fragments degrade to empty strings.
func (e *Extractor) Extract(ctx context.Context) (profile *profilepulse.Profile, err error) {
	// A buggy query path must end the current run, not the process.
	defer func() {
		if r := recover(); r != nil {
			profile = nil
			err = profilepulse.Errorf(profilepulse.EINTERNAL, "extraction panic: %v", r)
		}
	}()

	warmup := e.Warmup
	if warmup <= 0 {
		warmup = DefaultWarmup
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(warmup):
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultAwaitTimeout
	}

	nameNode, err := e.Waiter.Await(ctx, e.Selectors.Name, timeout)
	if err != nil {
		return nil, fmt.Errorf("awaiting name: %w", err)
	}
	name, err := nameNode.Text(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading name: %w", err)
	}

	titleNode, err := e.Waiter.Await(ctx, e.Selectors.TitleLine, timeout)
	if err != nil {
		return nil, fmt.Errorf("awaiting title line: %w", err)
	}
	title, err := titleNode.Text(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading title line: %w", err)
	}

	return &profilepulse.Profile{
		Name:       strings.TrimSpace(name),
		TitleLine:  strings.TrimSpace(title),
		Education:  e.sectionText(ctx, e.Selectors.EducationAnchor),
		Experience: e.sectionText(ctx, e.Selectors.ExperienceAnchor),
	}, nil
}

// sectionText is the best-effort path for optional fragments: one immediate
// query for the anchor, one ancestor walk to the section container, one
// text read. Every miss yields an empty string.
func (e *Extractor) sectionText(ctx context.Context, anchor string) string {
	node, err := e.Doc.Query(ctx, anchor)
	if err != nil {
		return ""
	}
	section, err := node.Closest(ctx, e.Selectors.Section)
	if err != nil {
		return ""
	}
	text, err := section.SectionText(ctx)
	if err != nil {
		if e.Logger != nil {
			e.Logger.Debug("section text read failed", "anchor", anchor, "error", err)
		}
		return ""
	}
	return text
}
