package rod_test

import (
	"testing"

	"github.com/pjbackcoding/profilepulse"
	pprod "github.com/pjbackcoding/profilepulse/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapseText_CollapsesWhitespace(t *testing.T) {
	t.Parallel()

	text, err := pprod.CollapseText("<section>\n  <h2>Formation</h2>\n\n  <p>École   Centrale</p>\n</section>")

	require.NoError(t, err)
	assert.Equal(t, "Formation École Centrale", text)
}

func TestCollapseText_NestedMarkup(t *testing.T) {
	t.Parallel()

	text, err := pprod.CollapseText(`<div><span>5 ans</span> <span>chez <b>X</b></span></div>`)

	require.NoError(t, err)
	assert.Equal(t, "5 ans chez X", text)
}

func TestCollapseText_Empty(t *testing.T) {
	t.Parallel()

	text, err := pprod.CollapseText("<div>   </div>")

	require.NoError(t, err)
	assert.Empty(t, text)
}

// Compile-time checks that the rod implementations satisfy the domain
// interfaces.
var (
	_ profilepulse.Document = (*pprod.Document)(nil)
	_ profilepulse.Injector = (*pprod.Injector)(nil)
	_ profilepulse.Watcher  = (*pprod.Watcher)(nil)
)
