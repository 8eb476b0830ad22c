package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "https://analytics-dashboard-server-six.vercel.app"
	DefaultScreen  = "dashboard"
	// EnvServer overrides base_url from the config file; --base-url wins over both.
	EnvServer = "STATDECK_SERVER"
)

type Config struct {
	StateDir       string
	ConfigPath     string
	DBPath         string
	LogPath        string
	BaseURL        string
	DarkMode       bool
	DefaultScreen  string
	LogLevel       string
	RequestTimeout time.Duration
}

// Overrides carries values supplied on the command line.
type Overrides struct {
	StateDir   string
	ConfigPath string
	BaseURL    string
	Getenv     func(string) string
}

type fileConfig struct {
	BaseURL        string `yaml:"base_url"`
	DarkMode       *bool  `yaml:"dark_mode"`
	DefaultScreen  string `yaml:"default_screen"`
	LogLevel       string `yaml:"log_level"`
	RequestTimeout string `yaml:"request_timeout"`
}

// New returns the default configuration rooted at stateDir.
func New(stateDir string) (Config, error) {
	if stateDir == "" {
		return Config{}, fmt.Errorf("state dir is required")
	}
	return Config{
		StateDir:      stateDir,
		ConfigPath:    filepath.Join(stateDir, "config.yaml"),
		DBPath:        filepath.Join(stateDir, "statdeck.db"),
		LogPath:       filepath.Join(stateDir, "statdeck.log"),
		BaseURL:       DefaultBaseURL,
		DefaultScreen: DefaultScreen,
		LogLevel:      "info",
	}, nil
}

func DefaultStateDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "statdeck"), nil
}

// Load layers defaults, the yaml file, the environment and flags, in that order.
func Load(o Overrides) (Config, error) {
	stateDir := o.StateDir
	if stateDir == "" {
		dir, err := DefaultStateDir()
		if err != nil {
			return Config{}, err
		}
		stateDir = dir
	}
	cfg, err := New(stateDir)
	if err != nil {
		return Config{}, err
	}
	if o.ConfigPath != "" {
		cfg.ConfigPath = o.ConfigPath
	}
	if err := cfg.applyFile(); err != nil {
		return Config{}, err
	}

	getenv := o.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if env := strings.TrimSpace(getenv(EnvServer)); env != "" {
		cfg.BaseURL = env
	}
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if err := validateBaseURL(cfg.BaseURL); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile() error {
	raw, err := os.ReadFile(c.ConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("decode config %s: %w", c.ConfigPath, err)
	}
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.DarkMode != nil {
		c.DarkMode = *fc.DarkMode
	}
	if fc.DefaultScreen != "" {
		c.DefaultScreen = fc.DefaultScreen
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("decode request_timeout: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("request_timeout must not be negative")
		}
		c.RequestTimeout = d
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base url must be http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("base url has no host: %q", raw)
	}
	return nil
}
