// Package config loads pagewindow settings from the config file and
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rshade/pagewindow/internal/pagination"
)

// Environment variables read by Load.
const (
	EnvHome          = "PAGEWINDOW_HOME"
	EnvPageLimit     = "PAGEWINDOW_PAGE_LIMIT"
	EnvPageNeighbors = "PAGEWINDOW_PAGE_NEIGHBORS"
	EnvLogLevel      = "PAGEWINDOW_LOG_LEVEL"
	EnvLogFormat     = "PAGEWINDOW_LOG_FORMAT"
	EnvOutputFormat  = "PAGEWINDOW_OUTPUT"
)

const (
	configDirName  = ".pagewindow"
	configFileName = "config.yaml"
)

// Supported output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrInvalidOutputFormat is returned for an unknown output format.
var ErrInvalidOutputFormat = errors.New("output format must be text, json or yaml")

// Config is the full pagewindow configuration.
type Config struct {
	Pagination PaginationConfig `json:"pagination" yaml:"pagination"`
	Output     OutputConfig     `json:"output"     yaml:"output"`
	Logging    LoggingConfig    `json:"logging"    yaml:"logging"`
}

// PaginationConfig holds the default page size and neighbor window.
type PaginationConfig struct {
	PageLimit     int `json:"page_limit"     yaml:"page_limit"`
	PageNeighbors int `json:"page_neighbors" yaml:"page_neighbors"`
}

// OutputConfig holds rendering defaults.
type OutputConfig struct {
	DefaultFormat string `json:"default_format" yaml:"default_format"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Pagination: PaginationConfig{
			PageLimit:     pagination.DefaultPageLimit,
			PageNeighbors: pagination.DefaultPageNeighbors,
		},
		Output: OutputConfig{
			DefaultFormat: OutputText,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config file at path, or the default location when path is
// empty, then applies environment overrides. A missing default file is not
// an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	cfg := New()

	explicit := path != ""
	if !explicit {
		def, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = def
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file yet; defaults apply.
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err = cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from environment variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPageLimit); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPageLimit, err)
		}
		c.Pagination.PageLimit = n
	}
	if v, ok := lookup(EnvPageNeighbors); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPageNeighbors, err)
		}
		c.Pagination.PageNeighbors = n
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
	return nil
}

// normalize treats a zero page limit as unset, the same way the pagination
// controller does.
func (c *Config) normalize() {
	if c.Pagination.PageLimit == 0 {
		c.Pagination.PageLimit = pagination.DefaultPageLimit
	}
}

// Validate checks the pagination and output settings.
func (c *Config) Validate() error {
	if err := c.PaginationOptions(0).Validate(); err != nil {
		return fmt.Errorf("invalid pagination config: %w", err)
	}
	if err := ValidateOutputFormat(c.Output.DefaultFormat); err != nil {
		return err
	}
	return nil
}

// PaginationOptions returns controller options for totalRecords using the
// configured page size and neighbor window.
func (c *Config) PaginationOptions(totalRecords int) pagination.Options {
	return pagination.Options{
		TotalRecords:  totalRecords,
		PageLimit:     c.Pagination.PageLimit,
		PageNeighbors: c.Pagination.PageNeighbors,
	}.Normalize()
}

// ValidateOutputFormat checks that format is a supported output format.
func ValidateOutputFormat(format string) error {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, format)
	}
}

// GetConfigDir returns the pagewindow configuration directory.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
