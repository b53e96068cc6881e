// Package log provides structured logging backed by logrus, persisted to a dated file in the logs directory.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/movieflix-cli/movieflix/filesystem"
	"github.com/movieflix-cli/movieflix/key"
	"github.com/movieflix-cli/movieflix/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// enabled gates every emission. The TUI owns the terminal, so logs never go to stdout.
var enabled bool

// Setup opens today's log file and applies the configured format and level.
// When logging is disabled all emissions are silently discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Enabled reports whether emissions reach the log file.
func Enabled() bool {
	return enabled
}

func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...interface{}) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debug(args ...interface{}) {
	if enabled {
		logrus.Debug(args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}

// WithFields returns an entry carrying structured fields. When logging is disabled the entry writes nowhere.
func WithFields(fields map[string]interface{}) *logrus.Entry {
	if !enabled {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		return logrus.NewEntry(discard)
	}
	return logrus.WithFields(fields)
}
