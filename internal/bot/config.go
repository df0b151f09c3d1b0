// Package bot holds the resolved bot configuration consumed by the chat client.
package bot

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/settings"
)

// DefaultPrefix is the command prefix used when none is configured.
const DefaultPrefix = "!"

// Config is built once at startup and passed by pointer. Treat it as read-only.
type Config struct {
	ID         string `setting:"id"`
	Secret     string `setting:"secret"`
	Token      string `setting:"token"`
	Prefix     string `setting:"prefix"`
	ConfigPath string `setting:"config"`
	Verbose    int    `setting:"verbose"`
}

// ConfigError reports an invalid or missing setting.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Options returns the settings the bot understands.
func Options() []settings.Option {
	return []settings.Option{
		{Names: []string{"-i", "--id"}, Help: "discord app id"},
		{Names: []string{"-s", "--secret"}, Help: "discord app secret"},
		{Names: []string{"-t", "--token"}, Help: "discord bot token"},
		{Names: []string{"-p", "--prefix"}, Help: "command prefix", Default: DefaultPrefix},
		{Names: []string{"-c", "--config"}, Help: "path to configuration file", ConfigPath: true, Metavar: "PATH"},
		{Names: []string{"-v", "--verbose"}, Help: "increase output verbosity", Kind: settings.KindCount},
	}
}

// FromSettings decodes and validates the bot configuration.
func FromSettings(s *settings.Settings) (*Config, error) {
	cfg := &Config{}
	if err := s.Scan(cfg); err != nil {
		return nil, err
	}
	cfg.Prefix = strings.TrimSpace(cfg.Prefix)
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	return cfg, nil
}

// Validate checks that the client can authenticate.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return &ConfigError{Field: "token", Message: "bot token is required"}
	}
	if strings.ContainsAny(c.Prefix, " \t") {
		return &ConfigError{Field: "prefix", Message: "command prefix cannot contain whitespace"}
	}
	return nil
}

// Redacted returns a copy safe for logging.
func (c Config) Redacted() Config {
	if c.Secret != "" {
		c.Secret = "***"
	}
	if c.Token != "" {
		c.Token = "***"
	}
	return c
}
