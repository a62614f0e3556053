package support

import (
	"log/slog"

	"github.com/osuushi/support/internal/logging"
)

// SetLogger configures the logger used by this module and all of its
// packages. By default nothing is logged. Passing nil restores that.
//
// Everything is logged at debug level: swallowed errors (for example a
// CopyFile that returned false), animation lifecycle, and intersection
// queries.
//
// Example:
//
//	support.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the logger currently in use. It is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
