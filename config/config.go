// Package config resolves service settings from defaults, an optional config
// file, a .env file, TOOLCATALOG_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonwraymond/toolcatalog/index"
)

// EnvPrefix prefixes every environment variable the service reads.
const EnvPrefix = "TOOLCATALOG"

// Search strategies.
const (
	SearchTiered = "tiered"
	SearchBM25   = "bm25"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved service configuration.
type Config struct {
	Env     string        `mapstructure:"env"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Search  SearchConfig  `mapstructure:"search"`
	LLM     LLMConfig     `mapstructure:"llm"`
	MCP     MCPConfig     `mapstructure:"mcp"`
}

type HTTPConfig struct {
	Address         string        `mapstructure:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type CatalogConfig struct {
	// Path to a YAML, TOML or JSON catalog. Empty serves the builtin catalog.
	Path       string `mapstructure:"path"`
	Watch      bool   `mapstructure:"watch"`
	LinkPolicy string `mapstructure:"link_policy"`
}

type SearchConfig struct {
	Strategy    string `mapstructure:"strategy"`
	MaxQueryLen int    `mapstructure:"max_query_len"`
}

type LLMConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	APIKey     string        `mapstructure:"api_key"`
	Model      string        `mapstructure:"model"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RateLimit  int           `mapstructure:"rate_limit"`
	RateWindow time.Duration `mapstructure:"rate_window"`
}

type MCPConfig struct {
	Name string `mapstructure:"name"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"env":         "env",
	"addr":        "http.address",
	"catalog":     "catalog.path",
	"watch":       "catalog.watch",
	"link-policy": "catalog.link_policy",
	"search":      "search.strategy",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.watch", false)
	v.SetDefault("catalog.link_policy", string(index.LinkEnabledOnly))
	v.SetDefault("search.strategy", SearchTiered)
	v.SetDefault("search.max_query_len", 200)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("llm.rate_limit", 10)
	v.SetDefault("llm.rate_window", time.Hour)
	v.SetDefault("mcp.name", "toolcatalog")
}

// RegisterFlags adds the service flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("env", "", "runtime environment (production enables JSON logs)")
	flags.String("addr", "", "HTTP listen address")
	flags.String("catalog", "", "catalog file; empty serves the builtin catalog")
	flags.Bool("watch", false, "reload the catalog file when it changes")
	flags.String("link-policy", "", "resolution of disabled tools: enabled-only or keep-alive")
	flags.String("search", "", "search strategy: tiered or bm25")
}

// Load resolves the configuration. flags may be nil; flags that were never
// set on the command line do not override other sources.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := loadDotEnv(flags); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := flagString(flags, "config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadDotEnv(flags *pflag.FlagSet) error {
	path := ".env"
	if flags != nil && flags.Lookup("env-file") != nil {
		path = flagString(flags, "env-file")
	}
	if path == "" {
		return nil
	}
	// Variables already in the environment win over the file.
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func flagString(flags *pflag.FlagSet, name string) string {
	if flags == nil || flags.Lookup(name) == nil {
		return ""
	}
	s, _ := flags.GetString(name)
	return s
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.HTTP.Address) == "" {
		errs = append(errs, errors.New("http.address is required"))
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("http.shutdown_timeout must be positive"))
	}
	if _, err := index.ParseLinkPolicy(c.Catalog.LinkPolicy); err != nil {
		errs = append(errs, fmt.Errorf("catalog.link_policy: %w", err))
	}
	switch c.Search.Strategy {
	case SearchTiered, SearchBM25:
	default:
		errs = append(errs, fmt.Errorf("search.strategy %q must be %s or %s", c.Search.Strategy, SearchTiered, SearchBM25))
	}
	if c.Search.MaxQueryLen <= 0 {
		errs = append(errs, errors.New("search.max_query_len must be positive"))
	}
	if c.LLM.RateLimit <= 0 {
		errs = append(errs, errors.New("llm.rate_limit must be positive"))
	}
	if c.LLM.RateWindow <= 0 {
		errs = append(errs, errors.New("llm.rate_window must be positive"))
	}
	if c.Catalog.Watch && c.Catalog.Path == "" {
		errs = append(errs, errors.New("catalog.watch requires catalog.path"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// LinkPolicy returns the parsed catalog.link_policy. Validate has already
// rejected unknown values.
func (c Config) LinkPolicy() index.LinkPolicy {
	p, _ := index.ParseLinkPolicy(c.Catalog.LinkPolicy)
	return p
}

// LLMEnabled reports whether prompt forwarding is configured.
func (c Config) LLMEnabled() bool {
	return c.LLM.APIKey != ""
}
