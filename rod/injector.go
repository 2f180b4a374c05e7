package rod

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/pjbackcoding/profilepulse"
)

// Ensure Injector implements profilepulse.Injector at compile time.
var _ profilepulse.Injector = (*Injector)(nil)

// Injector writes the generated summary into the page immediately after
// the title line element. Reruns replace the previous marker, so at most
// one summary box exists at any time.
type Injector struct {
	page      *rod.Page
	selectors profilepulse.Selectors
}

// NewInjector creates an Injector for an open page.
func NewInjector(page *rod.Page, selectors profilepulse.Selectors) *Injector {
	return &Injector{page: page, selectors: selectors}
}

// Inject replaces any existing summary marker with a new one holding text.
// If the title line is absent at injection time (the page may be mid
// re-render), the injection is silently skipped.
func (i *Injector) Inject(ctx context.Context, text string) error {
	page := i.page.Context(ctx)

	// Drop markers left over from a previous run first.
	existing, err := page.Elements("." + i.selectors.Marker)
	if err != nil {
		return fmt.Errorf("finding existing markers: %w", err)
	}
	for _, el := range existing {
		if err := el.Remove(); err != nil {
			return fmt.Errorf("removing existing marker: %w", err)
		}
	}

	title, err := page.Sleeper(rod.NotFoundSleeper).Element(i.selectors.TitleLine)
	if err != nil {
		var notFound *rod.ElementNotFoundError
		if errors.As(err, &notFound) {
			// Nothing to anchor to; the next navigation re-runs anyway.
			return nil
		}
		return err
	}

	_, err = title.Eval(`(cls, text) => {
		const box = document.createElement("div");
		box.className = cls;
		box.textContent = text;
		box.style.marginTop = "8px";
		box.style.padding = "8px 12px";
		box.style.borderLeft = "3px solid #0a66c2";
		this.insertAdjacentElement("afterend", box);
	}`, i.selectors.Marker, text)
	if err != nil {
		return fmt.Errorf("inserting marker: %w", err)
	}
	return nil
}
