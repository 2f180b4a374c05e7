package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Dependencies holds shared services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Watch   WatchCmd   `cmd:"" help:"Observe a profile page and inject generated summaries"`
	Version VersionCmd `cmd:"" help:"Print the version"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	URL string `arg:"" help:"Profile page URL to observe"`

	APIKey  string `env:"OPENAI_API_KEY" required:"" help:"API key for the completion service"`
	BaseURL string `help:"Override the completion service endpoint (OpenAI-compatible backends)"`
	Model   string `help:"Completion model (defaults to the built-in model)"`

	Warmup   time.Duration `default:"3s" help:"Pause before the first extraction attempt"`
	Timeout  time.Duration `default:"10s" help:"Deadline for mandatory elements to appear"`
	Interval time.Duration `default:"100ms" help:"Poll interval while waiting for elements"`

	Headful    bool   `help:"Run the browser with a visible window"`
	Stealth    bool   `help:"Open the page with stealth evasions"`
	ControlURL string `help:"Attach to a running browser at this DevTools URL"`

	Once bool `help:"Run the pipeline once and exit without watching for navigation"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}

// Run prints the version.
func (c *VersionCmd) Run(deps *Dependencies) error {
	_, err := fmt.Fprintln(deps.Stdout, "profilepulse "+Version)
	return err
}
