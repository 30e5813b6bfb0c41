package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voxcast/voxcast/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	return path
}

func TestParse(t *testing.T) {
	t.Setenv("TEST_SPEECHIFY_TOKEN", "sk-speechify")

	path := writeConfig(t, `
address: :9090

output: out

searchers:
  news:
    type: tavily
    token: tvly-test

  reddit:
    type: reddit

summarizers:
  claude:
    type: anthropic
    token: sk-ant-test
    model: claude-sonnet-4-5

synthesizers:
  speechify:
    type: speechify
    token: ${TEST_SPEECHIFY_TOKEN}

  gtranslate:
    type: gtranslate

routers:
  briefing:
    type: failover
    models:
      - speechify
      - gtranslate
`)

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Address)
	require.Equal(t, "out", cfg.Storage.Dir())

	_, err = cfg.Searcher("news")
	require.NoError(t, err)

	_, err = cfg.Searcher("reddit")
	require.NoError(t, err)

	_, err = cfg.Summarizer("claude")
	require.NoError(t, err)

	_, err = cfg.Synthesizer("speechify")
	require.NoError(t, err)

	_, err = cfg.Synthesizer("briefing")
	require.NoError(t, err)

	// registered routers become the default synthesizer
	def, err := cfg.Synthesizer("")
	require.NoError(t, err)

	chain, err := cfg.Synthesizer("briefing")
	require.NoError(t, err)
	require.Same(t, chain, def)

	// the voice catalog is served by the unwrapped adapter
	_, err = cfg.VoiceLister("speechify")
	require.NoError(t, err)
}

func TestParseUnknownField(t *testing.T) {
	path := writeConfig(t, `
listeners:
  foo: bar
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseInvalidType(t *testing.T) {
	path := writeConfig(t, `
synthesizers:
  bad:
    type: espeak
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}

func TestParseUnknownRouterModel(t *testing.T) {
	path := writeConfig(t, `
routers:
  chain:
    type: failover
    models:
      - missing
`)

	_, err := config.Parse(path)
	require.Error(t, err)
}
