// Package logging configures the logrus logger. Terminal output belongs to the UI, so logs go to a
// file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// MaxSize is the log size above which Setup moves the file aside to "<file>.old"
const MaxSize = 10 * 1024 * 1024

// Options selects level, format and destination
type Options struct {
	Level  string
	Format string
	// File is the log path; empty discards all output
	File string
}

// GetLevel parses a level name; empty means info
func GetLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.DebugLevel, fmt.Errorf("invalid log level: %v", level)
	}
}

// GetFormatter returns a text formatter for "text" and JSON otherwise
func GetFormatter(format string) logrus.Formatter {
	switch format {
	case "text", "":
		return &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	case "json-pretty":
		return &logrus.JSONFormatter{PrettyPrint: true}
	default:
		return &logrus.JSONFormatter{}
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds a logger from opts. The returned closer releases the log file.
func Setup(opts Options) (*logrus.Logger, io.Closer, error) {
	level, err := GetLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(GetFormatter(opts.Format))

	if opts.File == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	if dir := filepath.Dir(opts.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	if err := rotate(opts.File); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}

func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxSize {
		return nil
	}
	if err := os.Rename(path, path+".old"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
