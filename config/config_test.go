package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonwraymond/toolcatalog/index"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	// No .env lookups in the package directory unless a test asks for one.
	require.NoError(t, flags.Parse(append([]string{"--env-file="}, args...)))
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Env)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	require.Empty(t, cfg.Catalog.Path)
	require.Equal(t, index.LinkEnabledOnly, cfg.LinkPolicy())
	require.Equal(t, SearchTiered, cfg.Search.Strategy)
	require.Equal(t, 200, cfg.Search.MaxQueryLen)
	require.Equal(t, 10, cfg.LLM.RateLimit)
	require.Equal(t, time.Hour, cfg.LLM.RateWindow)
	require.Equal(t, "toolcatalog", cfg.MCP.Name)
	require.False(t, cfg.LLMEnabled())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TOOLCATALOG_HTTP_ADDRESS", ":9000")
	t.Setenv("TOOLCATALOG_CATALOG_LINK_POLICY", "keep-alive")
	t.Setenv("TOOLCATALOG_LLM_API_KEY", "sk-test")
	t.Setenv("TOOLCATALOG_LLM_RATE_WINDOW", "10m")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.HTTP.Address)
	require.Equal(t, index.LinkKeepAlive, cfg.LinkPolicy())
	require.True(t, cfg.LLMEnabled())
	require.Equal(t, 10*time.Minute, cfg.LLM.RateWindow)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TOOLCATALOG_HTTP_ADDRESS", ":9000")
	t.Setenv("TOOLCATALOG_SEARCH_STRATEGY", "tiered")

	cfg, err := Load(newFlags(t, "--addr", ":7070", "--search", "bm25"))
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.HTTP.Address)
	require.Equal(t, SearchBM25, cfg.Search.Strategy)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toolcatalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: production
http:
  address: ":6060"
catalog:
  path: /srv/catalog.yaml
  watch: true
search:
  max_query_len: 64
`), 0o600))

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Env)
	require.Equal(t, ":6060", cfg.HTTP.Address)
	require.Equal(t, "/srv/catalog.yaml", cfg.Catalog.Path)
	require.True(t, cfg.Catalog.Watch)
	require.Equal(t, 64, cfg.Search.MaxQueryLen)
}

func TestLoad_DotEnv(t *testing.T) {
	const key = "TOOLCATALOG_MCP_NAME"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-dotenv\n"), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--env-file", path}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	require.Equal(t, "from-dotenv", cfg.MCP.Name)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "link policy", args: []string{"--link-policy", "sometimes"}},
		{name: "search strategy", args: []string{"--search", "vector"}},
		{name: "watch without path", args: []string{"--watch"}},
		{name: "rate limit", env: map[string]string{"TOOLCATALOG_LLM_RATE_LIMIT": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(newFlags(t, tt.args...))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	require.Error(t, err)
}

func TestLoad_NilFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
}
