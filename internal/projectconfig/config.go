// Package projectconfig provides the ProjectConfig struct and loader for
// .benchrank.yaml configuration files and BENCHRANK_* environment overrides.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spboyer/benchrank/internal/utils"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by Load.
const FileName = ".benchrank.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultServerHost = "127.0.0.1"
	DefaultServerPort = 3000

	DefaultUpstreamBaseURL = "https://kovaaks.com/webapp-backend"
	DefaultUpstreamTimeout = 30

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// ServerConfig holds HTTP API server settings.
type ServerConfig struct {
	Host           string   `yaml:"host,omitempty"`
	Port           int      `yaml:"port,omitempty"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// UpstreamConfig holds settings for the ranking API client.
type UpstreamConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	// Timeout is the HTTP client timeout in seconds.
	Timeout       int   `yaml:"timeout,omitempty"`
	StrictPayload *bool `yaml:"strict_payload,omitempty"`
}

// MetadataConfig selects where the benchmark table is loaded from. An empty
// Source means the table embedded in the binary.
type MetadataConfig struct {
	Source string `yaml:"source,omitempty"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .benchrank.yaml.
type ProjectConfig struct {
	Server   ServerConfig   `yaml:"server,omitempty"`
	Upstream UpstreamConfig `yaml:"upstream,omitempty"`
	Metadata MetadataConfig `yaml:"metadata,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`

	// Dir is the directory of the loaded config file, empty when none was found.
	Dir string `yaml:"-"`
}

// UpstreamTimeout returns the upstream timeout as a duration.
func (c *ProjectConfig) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.Timeout) * time.Second
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Server: ServerConfig{
			Host: DefaultServerHost,
			Port: DefaultServerPort,
		},
		Upstream: UpstreamConfig{
			BaseURL:       DefaultUpstreamBaseURL,
			Timeout:       DefaultUpstreamTimeout,
			StrictPayload: utils.Ptr(false),
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// envOverrides mirrors the settings that may be supplied through the
// environment. Unset variables leave the pointer nil.
type envOverrides struct {
	ServerHost    *string `env:"BENCHRANK_SERVER_HOST"`
	ServerPort    *int    `env:"BENCHRANK_SERVER_PORT"`
	BaseURL       *string `env:"BENCHRANK_UPSTREAM_BASE_URL"`
	Timeout       *int    `env:"BENCHRANK_UPSTREAM_TIMEOUT"`
	StrictPayload *bool   `env:"BENCHRANK_UPSTREAM_STRICT_PAYLOAD"`
	MetaSource    *string `env:"BENCHRANK_METADATA_SOURCE"`
	LogLevel      *string `env:"BENCHRANK_LOG_LEVEL"`
	LogFormat     *string `env:"BENCHRANK_LOG_FORMAT"`
}

// Load finds .benchrank.yaml by walking up from startDir (max 10 levels),
// unmarshals it, fills in missing fields with defaults and finally applies
// BENCHRANK_* environment variables. A relative metadata.source in the file
// is resolved against the file's directory.
// If no config file is found, defaults (plus environment) are returned with a
// nil error. Real I/O errors (e.g. permission denied) are returned.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, path, err := findConfigFile(startDir)
	switch {
	case err == nil:
		var fileCfg ProjectConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", FileName, err)
		}
		mergeConfig(cfg, &fileCfg)
		cfg.Dir = filepath.Dir(path)
		cfg.Metadata.Source = utils.ResolveSource(cfg.Metadata.Source, cfg.Dir)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile walks up from dir looking for .benchrank.yaml (max 10
// levels) and returns its contents and path. Returns os.ErrNotExist if no
// config file is found.
func findConfigFile(dir string) ([]byte, string, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, "", os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Server
	if src.Server.Host != "" {
		dst.Server.Host = src.Server.Host
	}
	if src.Server.Port != 0 {
		dst.Server.Port = src.Server.Port
	}
	if len(src.Server.AllowedOrigins) > 0 {
		dst.Server.AllowedOrigins = src.Server.AllowedOrigins
	}

	// Upstream
	if src.Upstream.BaseURL != "" {
		dst.Upstream.BaseURL = src.Upstream.BaseURL
	}
	if src.Upstream.Timeout != 0 {
		dst.Upstream.Timeout = src.Upstream.Timeout
	}
	if src.Upstream.StrictPayload != nil {
		dst.Upstream.StrictPayload = src.Upstream.StrictPayload
	}

	// Metadata
	if src.Metadata.Source != "" {
		dst.Metadata.Source = src.Metadata.Source
	}

	// Logging
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}
}

func applyEnv(cfg *ProjectConfig) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.ServerHost != nil {
		cfg.Server.Host = *o.ServerHost
	}
	if o.ServerPort != nil {
		cfg.Server.Port = *o.ServerPort
	}
	if o.BaseURL != nil {
		cfg.Upstream.BaseURL = *o.BaseURL
	}
	if o.Timeout != nil {
		cfg.Upstream.Timeout = *o.Timeout
	}
	if o.StrictPayload != nil {
		cfg.Upstream.StrictPayload = o.StrictPayload
	}
	if o.MetaSource != nil {
		cfg.Metadata.Source = *o.MetaSource
	}
	if o.LogLevel != nil {
		cfg.Logging.Level = *o.LogLevel
	}
	if o.LogFormat != nil {
		cfg.Logging.Format = *o.LogFormat
	}
	return nil
}

// Strict reports whether upstream payloads should be schema-validated.
func (c *ProjectConfig) Strict() bool {
	return c.Upstream.StrictPayload != nil && *c.Upstream.StrictPayload
}
