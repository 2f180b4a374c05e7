package main

import (
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T) (*CLI, *kong.Kong) {
	t.Helper()

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("profilepulse"),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	return cli, parser
}

func TestCLI_Watch_Defaults(t *testing.T) {
	t.Parallel()

	cli, parser := newTestParser(t)

	_, err := parser.Parse([]string{
		"watch", "https://example.com/in/a-dupont",
		"--api-key", "sk-test",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/in/a-dupont", cli.Watch.URL)
	assert.Equal(t, "sk-test", cli.Watch.APIKey)
	assert.Equal(t, 3*time.Second, cli.Watch.Warmup)
	assert.Equal(t, 10*time.Second, cli.Watch.Timeout)
	assert.Equal(t, 100*time.Millisecond, cli.Watch.Interval)
	assert.False(t, cli.Watch.Headful)
	assert.False(t, cli.Watch.Once)
}

func TestCLI_Watch_Flags(t *testing.T) {
	t.Parallel()

	cli, parser := newTestParser(t)

	_, err := parser.Parse([]string{
		"watch", "https://example.com/in/a-dupont",
		"--api-key", "sk-test",
		"--model", "gpt-4o",
		"--base-url", "http://localhost:8080/v1",
		"--warmup", "1s",
		"--stealth",
		"--once",
	})

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cli.Watch.Model)
	assert.Equal(t, "http://localhost:8080/v1", cli.Watch.BaseURL)
	assert.Equal(t, time.Second, cli.Watch.Warmup)
	assert.True(t, cli.Watch.Stealth)
	assert.True(t, cli.Watch.Once)
}

func TestCLI_Watch_RequiresURL(t *testing.T) {
	t.Parallel()

	_, parser := newTestParser(t)

	_, err := parser.Parse([]string{"watch", "--api-key", "sk-test"})

	require.Error(t, err)
}
