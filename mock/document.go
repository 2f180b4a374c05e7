// Package mock provides hand-written mocks for profilepulse interfaces.
package mock

import (
	"context"

	"github.com/pjbackcoding/profilepulse"
)

var _ profilepulse.Document = (*Document)(nil)

// Document is a mock implementation of profilepulse.Document.
type Document struct {
	QueryFn    func(ctx context.Context, selector string) (profilepulse.Node, error)
	LocationFn func(ctx context.Context) (string, error)
}

func (d *Document) Query(ctx context.Context, selector string) (profilepulse.Node, error) {
	return d.QueryFn(ctx, selector)
}

func (d *Document) Location(ctx context.Context) (string, error) {
	return d.LocationFn(ctx)
}

var _ profilepulse.Node = (*Node)(nil)

// Node is a mock implementation of profilepulse.Node.
type Node struct {
	TextFn        func(ctx context.Context) (string, error)
	ClosestFn     func(ctx context.Context, selector string) (profilepulse.Node, error)
	SectionTextFn func(ctx context.Context) (string, error)
}

func (n *Node) Text(ctx context.Context) (string, error) {
	return n.TextFn(ctx)
}

func (n *Node) Closest(ctx context.Context, selector string) (profilepulse.Node, error) {
	return n.ClosestFn(ctx, selector)
}

func (n *Node) SectionText(ctx context.Context) (string, error) {
	return n.SectionTextFn(ctx)
}
