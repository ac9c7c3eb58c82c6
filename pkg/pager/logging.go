package pager

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/pager/pkg/pager/constants"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/logging"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first log record is written to take effect.
func SetLogPath(path string) {
	logging.SetLogPath(path)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return logging.Logger()
}

// SetLogLevel sets the application log level from a name such as "debug".
// The pager's own logger follows it when set to debug, and when the
// PAGER_LOG_LEVEL environment variable asks for it.
func SetLogLevel(rawLevel string) {
	level := logging.ParseLevel(rawLevel)
	logging.SetLevel(level)

	internal := slog.LevelError
	if level == slog.LevelDebug {
		internal = slog.LevelDebug
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		internal = logging.ParseLevel(v)
	}
	logging.SetInternalLevel(internal)
}

// CloseLogger flushes and closes the log file, if any.
func CloseLogger() {
	logging.Close()
}
