package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rshade/pagewindow/internal/logging"
)

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level  string `json:"level"  yaml:"level"`
	Format string `json:"format" yaml:"format"`
	File   string `json:"file"   yaml:"file"`
}

// ToLoggingConfig converts the settings for use with the logging package.
// Empty fields keep the logging defaults; a configured File switches output
// to the file.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if lc.Level != "" {
		cfg.Level = lc.Level
	}
	if lc.Format != "" {
		cfg.Format = lc.Format
	}
	if lc.File != "" {
		cfg.Output = logging.OutputFile
		cfg.File = lc.File
	}
	return cfg
}

// EnsureLogDir creates the parent directory of the configured log file.
func (lc LoggingConfig) EnsureLogDir() error {
	if lc.File == "" {
		return nil
	}
	logDir := filepath.Dir(lc.File)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}
