// Package logging builds the hclog logger used by format-performer-tags.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes the desired logging configuration.
type Config struct {
	Level          string `json:"level" yaml:"level"`
	JSON           bool   `json:"json,omitempty" yaml:"json,omitempty"`
	FilePath       string `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	FileMaxSizeMB  int    `json:"file_max_size_mb,omitempty" yaml:"file_max_size_mb,omitempty"`
	FileMaxFiles   int    `json:"file_max_files,omitempty" yaml:"file_max_files,omitempty"`
	FileMaxAgeDays int    `json:"file_max_age_days,omitempty" yaml:"file_max_age_days,omitempty"`
}

// DefaultConfig logs warnings and errors to stderr.
func DefaultConfig() Config {
	return Config{
		Level:          "warn",
		FileMaxSizeMB:  10,
		FileMaxFiles:   3,
		FileMaxAgeDays: 30,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger from cfg. When cfg.FilePath is set, output goes to a
// rotating file instead of stderr; the returned Closer releases it.
func New(name string, cfg Config) (hclog.Logger, io.Closer) {
	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if cfg.FilePath != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxFiles,
			MaxAge:     cfg.FileMaxAgeDays,
		}
		out = lj
		closer = lj
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      ParseLevel(cfg.Level),
		Output:     out,
		JSONFormat: cfg.JSON,
		Color:      hclog.ColorOff,
	})
	return logger, closer
}

// ParseLevel converts a level name to an hclog.Level, defaulting to Warn.
func ParseLevel(level string) hclog.Level {
	if l := hclog.LevelFromString(strings.TrimSpace(level)); l != hclog.NoLevel {
		return l
	}
	return hclog.Warn
}
