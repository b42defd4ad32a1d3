package goja

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// FunctionalOption is a function that configures an Adapter instance
type FunctionalOption func(*Adapter) error

// WithLogHandler creates an option to set the log handler for the adapter.
// This is the preferred option for logging configuration as it provides
// more flexibility through the slog.Handler interface.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(a *Adapter) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		a.logHandler = handler
		// Clear logger if handler is explicitly set
		a.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for the adapter.
// This is less flexible than WithLogHandler but allows users to customize
// their logging group configuration.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(a *Adapter) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		a.logger = logger
		// Clear handler if logger is explicitly set
		a.logHandler = nil
		return nil
	}
}

// WithCompilerSource creates an option replacing the bundled compiler asset
// with the given script text. The replacement must expose the same
// embedding surface the shims target (window.less.Parser, the importer
// hook, callback-style parse). Mainly useful for pinning a different
// compiler build, or for exercising bootstrap failures in tests.
func WithCompilerSource(src string) FunctionalOption {
	return func(a *Adapter) error {
		if strings.TrimSpace(src) == "" {
			return fmt.Errorf("compiler source cannot be empty")
		}
		a.compilerSrc = src
		return nil
	}
}

// applyDefaults sets the default values for an adapter
func (a *Adapter) applyDefaults() {
	// Default to stderr for logging if neither handler nor logger specified
	if a.logHandler == nil && a.logger == nil {
		a.logHandler = slog.NewTextHandler(os.Stderr, nil)
	}

	if a.compilerSrc == "" {
		a.compilerSrc = compilerSource
	}
}

// validate checks if the adapter configuration is valid
func (a *Adapter) validate() error {
	// Ensure we have either a logger or a handler
	if a.logHandler == nil && a.logger == nil {
		return fmt.Errorf("either log handler or logger must be specified")
	}

	if a.compilerSrc == "" {
		return fmt.Errorf("compiler source is empty")
	}

	return nil
}
