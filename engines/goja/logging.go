package goja

import (
	"context"
	"log/slog"
	"strings"

	gojaLib "github.com/dop251/goja"
)

// slogPrinter routes console output from inside the scope to slog.
type slogPrinter struct {
	logger *slog.Logger
}

func newSlogPrinter(logger *slog.Logger) *slogPrinter {
	return &slogPrinter{logger: logger.WithGroup("console")}
}

func (p *slogPrinter) Log(msg string)   { p.logger.Info(msg) }
func (p *slogPrinter) Warn(msg string)  { p.logger.Warn(msg) }
func (p *slogPrinter) Error(msg string) { p.logger.Error(msg) }

// newLogBinding builds the object bound under the fixed global name "log",
// giving script-side code leveled diagnostics backed by the same handler as
// the rest of the adapter. Logging is advisory only; it never replaces
// error propagation.
func newLogBinding(vm *gojaLib.Runtime, logger *slog.Logger) *gojaLib.Object {
	scriptLogger := logger.WithGroup("script")
	obj := vm.NewObject()
	for name, level := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		_ = obj.Set(name, logFunc(scriptLogger, level))
	}
	return obj
}

func logFunc(logger *slog.Logger, level slog.Level) func(gojaLib.FunctionCall) gojaLib.Value {
	return func(call gojaLib.FunctionCall) gojaLib.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, arg.String())
		}
		logger.Log(context.Background(), level, strings.Join(parts, " "))
		return gojaLib.Undefined()
	}
}
