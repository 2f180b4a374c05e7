package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/pjbackcoding/profilepulse"
	"github.com/pjbackcoding/profilepulse/mock"
	"github.com/pjbackcoding/profilepulse/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textNode returns a mock node with fixed rendered text.
func textNode(text string) *mock.Node {
	return &mock.Node{
		TextFn: func(context.Context) (string, error) {
			return text, nil
		},
	}
}

// anchorNode returns a mock anchor whose enclosing section renders text.
func anchorNode(sectionText string) *mock.Node {
	return &mock.Node{
		ClosestFn: func(_ context.Context, _ string) (profilepulse.Node, error) {
			return &mock.Node{
				SectionTextFn: func(context.Context) (string, error) {
					return sectionText, nil
				},
			}, nil
		},
	}
}

// docWithNodes serves nodes by selector; anything else is a miss.
func docWithNodes(nodes map[string]profilepulse.Node) *mock.Document {
	return &mock.Document{
		QueryFn: func(_ context.Context, selector string) (profilepulse.Node, error) {
			if node, ok := nodes[selector]; ok {
				return node, nil
			}
			return nil, profilepulse.Errorf(profilepulse.ENOTFOUND, "no element matches %q", selector)
		},
	}
}

func newTestExtractor(doc *mock.Document) *pipeline.Extractor {
	return &pipeline.Extractor{
		Doc:       doc,
		Waiter:    &pipeline.Waiter{Doc: doc, Interval: time.Millisecond},
		Selectors: profilepulse.DefaultSelectors(),
		Warmup:    time.Millisecond,
		Timeout:   10 * time.Millisecond,
	}
}

func TestExtractor_Extract_FullProfile(t *testing.T) {
	t.Parallel()

	selectors := profilepulse.DefaultSelectors()
	doc := docWithNodes(map[string]profilepulse.Node{
		selectors.Name:             textNode("  A. Dupont\n"),
		selectors.TitleLine:        textNode("Ingénieur chez X "),
		selectors.EducationAnchor:  anchorNode("Formation École Centrale 2015-2018"),
		selectors.ExperienceAnchor: anchorNode("Expérience 5 ans chez X"),
	})

	profile, err := newTestExtractor(doc).Extract(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "A. Dupont", profile.Name)
	assert.Equal(t, "Ingénieur chez X", profile.TitleLine)
	assert.Equal(t, "Formation École Centrale 2015-2018", profile.Education)
	assert.Equal(t, "Expérience 5 ans chez X", profile.Experience)
}

func TestExtractor_Extract_MissingNameFailsWithTimeout(t *testing.T) {
	t.Parallel()

	selectors := profilepulse.DefaultSelectors()
	doc := docWithNodes(map[string]profilepulse.Node{
		selectors.TitleLine: textNode("Ingénieur chez X"),
	})

	profile, err := newTestExtractor(doc).Extract(context.Background())

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.Equal(t, profilepulse.ETIMEOUT, profilepulse.ErrorCode(err))
}

func TestExtractor_Extract_MissingTitleLineFailsWithTimeout(t *testing.T) {
	t.Parallel()

	selectors := profilepulse.DefaultSelectors()
	doc := docWithNodes(map[string]profilepulse.Node{
		selectors.Name: textNode("A. Dupont"),
	})

	profile, err := newTestExtractor(doc).Extract(context.Background())

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.Equal(t, profilepulse.ETIMEOUT, profilepulse.ErrorCode(err))
}

func TestExtractor_Extract_OptionalSectionsDegradeToEmpty(t *testing.T) {
	t.Parallel()

	selectors := profilepulse.DefaultSelectors()
	doc := docWithNodes(map[string]profilepulse.Node{
		selectors.Name:      textNode("A. Dupont"),
		selectors.TitleLine: textNode("Ingénieur chez X"),
	})

	profile, err := newTestExtractor(doc).Extract(context.Background())

	require.NoError(t, err)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Experience)
}

func TestExtractor_Extract_AnchorWithoutSectionDegradesToEmpty(t *testing.T) {
	t.Parallel()

	selectors := profilepulse.DefaultSelectors()
	doc := docWithNodes(map[string]profilepulse.Node{
		selectors.Name:      textNode("A. Dupont"),
		selectors.TitleLine: textNode("Ingénieur chez X"),
		selectors.EducationAnchor: &mock.Node{
			ClosestFn: func(_ context.Context, selector string) (profilepulse.Node, error) {
				return nil, profilepulse.Errorf(profilepulse.ENOTFOUND, "no ancestor matches %q", selector)
			},
		},
	})

	profile, err := newTestExtractor(doc).Extract(context.Background())

	require.NoError(t, err)
	assert.Empty(t, profile.Education)
}

func TestExtractor_Extract_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	doc := &mock.Document{
		QueryFn: func(context.Context, string) (profilepulse.Node, error) {
			panic("detached frame")
		},
	}

	profile, err := newTestExtractor(doc).Extract(context.Background())

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.Equal(t, profilepulse.EINTERNAL, profilepulse.ErrorCode(err))
	assert.Contains(t, profilepulse.ErrorMessage(err), "detached frame")
}

func TestExtractor_Extract_ContextCancelledDuringWarmup(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newTestExtractor(docWithNodes(nil))
	e.Warmup = time.Minute

	_, err := e.Extract(ctx)

	require.ErrorIs(t, err, context.Canceled)
}
