package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger creates a configured logger for the engine packages.
// If the provided handler is nil, a default text handler is created and
// grouped under the engine name.
//
// Parameters:
//   - handler: the slog.Handler to use, or nil for defaults
//   - engineName: the name of the engine (e.g., "goja")
//   - groupName: optional additional group within the engine
//
// Returns the configured handler and a logger created from it.
func SetupLogger(handler slog.Handler, engineName string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, nil).WithGroup(engineName)
	}

	var logger *slog.Logger
	if groupName != "" {
		logger = slog.New(handler.WithGroup(groupName))
	} else {
		logger = slog.New(handler)
	}

	return handler, logger
}
