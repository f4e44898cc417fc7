// Package config loads linkrank settings from a TOML file.
//
// The file is optional. Its default location follows the XDG base directory
// convention:
//
//	$XDG_CONFIG_HOME/linkrank/config.toml   (or ~/.config/linkrank/config.toml)
//
// Format:
//
//	pages = "pages.txt"
//	links = "links.txt"
//	max_pages = 40
//	order = "index"
//
//	[log]
//	level = "info"
//
//	[server]
//	addr = ":8080"
//	shutdown_timeout = "5s"
//
// Command-line flags take precedence over values read from the file.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/linkrank/pkg/errors"
	"github.com/matzehuels/linkrank/pkg/webgraph"
)

const appName = "linkrank"

// Config is the full set of file-backed settings.
type Config struct {
	Pages    string       `toml:"pages"`
	Links    string       `toml:"links"`
	MaxPages int          `toml:"max_pages"`
	Order    string       `toml:"order"`
	Log      LogConfig    `toml:"log"`
	Server   ServerConfig `toml:"server"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Duration is a time.Duration written as a Go duration string ("5s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Pages:    "pages.txt",
		Links:    "links.txt",
		MaxPages: webgraph.DefaultMaxPages,
		Order:    webgraph.ByIndex.String(),
		Log:      LogConfig{Level: "info"},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: Duration{5 * time.Second},
		},
	}
}

// DefaultPath returns the config file location using the XDG standard.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads path on top of Default. A missing file is not an error.
// Keys that are absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeMalformedInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeMalformedInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.MaxPages < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_pages must be >= 0, got %d", c.MaxPages)
	}
	if _, err := webgraph.ParseOrder(c.Order); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Server.ShutdownTimeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.shutdown_timeout must not be negative")
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidInput, err, "log.level")
	}
	return level, nil
}

// Write encodes c as TOML to w.
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Save writes c to path, creating parent directories as needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	if err := c.Write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
