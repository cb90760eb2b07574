package shared

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger returns the session logger and a func that releases it. The
// terminal belongs to the game, so logs go to path when it is set; otherwise
// they go to stderr and only warnings get through unless debug is on.
func SetupLogger(path string, debug bool) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	if path == "" {
		if !debug {
			level = log.WarnLevel
		}
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	return logger, f.Close, nil
}
