// Package logging configures the global logrus logger to write to a
// rotating file. The terminal belongs to the UI, so nothing is written to
// stdout or stderr once Setup succeeds.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/drake/pickers/config"
	"github.com/drake/pickers/debug"
)

// Setup points the global logrus logger at the configured file and returns
// the writer so the caller can close it on shutdown.
func Setup(cfg config.Log) (io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if debug.Enabled() {
		level = logrus.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	out := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	logrus.SetLevel(level)
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	logrus.WithFields(logrus.Fields{
		"level":       level.String(),
		"log_file":    cfg.File,
		"max_size":    fmt.Sprintf("%dMB", cfg.MaxSizeMB),
		"max_backups": cfg.MaxBackups,
		"max_age":     fmt.Sprintf("%d days", cfg.MaxAgeDays),
		"compress":    cfg.Compress,
	}).Info("Logger initialized with file output")

	return out, nil
}

// ParseLevel converts a config level string to a logrus.Level.
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logrus.DebugLevel, nil
	case "INFO":
		return logrus.InfoLevel, nil
	case "WARNING", "WARN":
		return logrus.WarnLevel, nil
	case "ERROR":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("unknown log level: %s", level)
	}
}
