package rod

import (
	"context"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/pjbackcoding/profilepulse"
)

// Ensure Document implements profilepulse.Document at compile time.
var _ profilepulse.Document = (*Document)(nil)

// Document adapts a live rod page to the profilepulse document boundary.
// All queries answer from the page's current state; waiting is the
// pipeline Waiter's job, so every lookup here uses rod's NotFoundSleeper
// to disable rod's own retry loop.
type Document struct {
	page *rod.Page
}

// NewDocument creates a Document over an open page.
func NewDocument(page *rod.Page) *Document {
	return &Document{page: page}
}

// Query returns the first node matching selector, or ENOTFOUND.
func (d *Document) Query(ctx context.Context, selector string) (profilepulse.Node, error) {
	el, err := d.page.Context(ctx).Sleeper(rod.NotFoundSleeper).Element(selector)
	if err != nil {
		var notFound *rod.ElementNotFoundError
		if errors.As(err, &notFound) {
			return nil, profilepulse.Errorf(profilepulse.ENOTFOUND, "no element matches %q", selector)
		}
		return nil, err
	}
	return &Node{el: el}, nil
}

// Location returns the page's current URL.
func (d *Document) Location(ctx context.Context) (string, error) {
	info, err := d.page.Context(ctx).Info()
	if err != nil {
		return "", err
	}
	return info.URL, nil
}

// Ensure Node implements profilepulse.Node at compile time.
var _ profilepulse.Node = (*Node)(nil)

// Node wraps a rod element.
type Node struct {
	el *rod.Element
}

// Text returns the element's rendered text.
func (n *Node) Text(ctx context.Context) (string, error) {
	return n.el.Context(ctx).Text()
}

// Closest walks parents (starting at the node itself) until one matches
// selector. The walk ends at the document root, where rod reports the
// parent lookup as failed.
func (n *Node) Closest(ctx context.Context, selector string) (profilepulse.Node, error) {
	el := n.el.Context(ctx)
	for {
		ok, err := el.Matches(selector)
		if err != nil {
			return nil, err
		}
		if ok {
			return &Node{el: el}, nil
		}
		parent, err := el.Parent()
		if err != nil {
			return nil, profilepulse.Errorf(profilepulse.ENOTFOUND, "no ancestor matches %q", selector)
		}
		el = parent
	}
}

// SectionText returns the subtree's text with whitespace collapsed.
func (n *Node) SectionText(ctx context.Context) (string, error) {
	html, err := n.el.Context(ctx).HTML()
	if err != nil {
		return "", err
	}
	return CollapseText(html)
}

// CollapseText parses an HTML fragment and returns its text content with
// runs of whitespace collapsed to single spaces, trimmed.
func CollapseText(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", profilepulse.Errorf(profilepulse.EINVALID, "failed to parse HTML: %v", err)
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
