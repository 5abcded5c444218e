// Package config loads server settings from defaults, an optional YAML file,
// an optional .env file and TRACKER_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TRACKER_"

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Access  AccessConfig  `yaml:"access"`
	RSVP    RSVPConfig    `yaml:"rsvp"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StorageConfig struct {
	// Driver is "memory" or "sqlite".
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type AuthConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"token_ttl"`
}

type AccessConfig struct {
	// Admins are granted the admin role at startup.
	Admins []string `yaml:"admins"`
}

type RSVPConfig struct {
	RatePerMinute float64 `yaml:"rate_per_minute"`
	Burst         int     `yaml:"burst"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Format is "text" (colored) or "json".
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Addr: ":8080", ShutdownTimeout: 10 * time.Second},
		Storage: StorageConfig{Driver: "sqlite", Path: "./data/tracker.db"},
		Auth:    AuthConfig{TokenTTL: 24 * time.Hour},
		RSVP:    RSVPConfig{RatePerMinute: 10, Burst: 5},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Load builds the configuration. yamlPath and envPath may be empty; a
// missing .env file is not an error, a missing YAML file that was asked for is.
func Load(yamlPath, envPath string) (*Config, error) {
	cfg := Default()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envPath, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	str("SERVER_ADDR", &c.Server.Addr)
	str("STORAGE_DRIVER", &c.Storage.Driver)
	str("STORAGE_PATH", &c.Storage.Path)
	str("AUTH_SECRET", &c.Auth.Secret)
	str("LOG_FORMAT", &c.Log.Format)

	// LOG_LEVEL is honored unprefixed as well.
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	str("LOG_LEVEL", &c.Log.Level)

	if v, ok := lookup(EnvPrefix + "ACCESS_ADMINS"); ok {
		c.Access.Admins = splitList(v)
	}

	for key, dst := range map[string]*time.Duration{
		"AUTH_TOKEN_TTL":          &c.Auth.TokenTTL,
		"SERVER_SHUTDOWN_TIMEOUT": &c.Server.ShutdownTimeout,
	} {
		if v, ok := lookup(EnvPrefix + key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
			}
			*dst = d
		}
	}

	if v, ok := lookup(EnvPrefix + "RSVP_RATE_PER_MINUTE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %sRSVP_RATE_PER_MINUTE: %w", EnvPrefix, err)
		}
		c.RSVP.RatePerMinute = f
	}
	if v, ok := lookup(EnvPrefix + "RSVP_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sRSVP_BURST: %w", EnvPrefix, err)
		}
		c.RSVP.Burst = n
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory":
	case "sqlite":
		if c.Storage.Path == "" {
			return errors.New("storage.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log.format %q", c.Log.Format)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.RSVP.RatePerMinute <= 0 || c.RSVP.Burst <= 0 {
		return errors.New("rsvp.rate_per_minute and rsvp.burst must be positive")
	}
	return nil
}
