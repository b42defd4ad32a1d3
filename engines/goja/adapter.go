package goja

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	gojaLib "github.com/dop251/goja"
	"github.com/robbyt/go-lessjs/internal/helpers"
	"github.com/robbyt/go-lessjs/platform"
	"github.com/robbyt/go-lessjs/platform/source"
)

// Adapter drives the embedded compiler. It owns the execution scope built
// once at construction time: the browser shims, the compiler's own
// definitions, and the import bridge live in a single goja runtime, and the
// compiled entry point is reused for every parse. The scope's bindings are
// never reassigned after bootstrap; only the compiler's internal state may
// mutate during a call.
type Adapter struct {
	// mu serializes entry into the runtime. A goja runtime must not be
	// entered concurrently by two goroutines, and the compiler keeps
	// mutable state in the shared scope, so parsing is serialized.
	mu    sync.Mutex
	vm    *gojaLib.Runtime
	entry gojaLib.Callable

	compilerSrc string
	logHandler  slog.Handler
	logger      *slog.Logger
}

// New creates an Adapter and bootstraps its execution scope. Construction
// either fully succeeds or returns an error wrapping ErrInitFailed; there
// is no partially initialized state. Most callers want Default instead,
// which shares one adapter per process.
func New(opts ...FunctionalOption) (*Adapter, error) {
	a := &Adapter{}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("error applying adapter option: %w", err)
		}
	}
	a.applyDefaults()
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("invalid adapter configuration: %w", err)
	}

	if a.logger != nil {
		a.logHandler = a.logger.Handler()
	} else {
		a.logHandler, a.logger = helpers.SetupLogger(a.logHandler, "goja", "Adapter")
	}

	if err := a.bootstrap(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}
	return a, nil
}

func (a *Adapter) String() string {
	return "goja.Adapter"
}

// Parse implements platform.Parser. It invokes the compiled entry point
// with the given source; the compiler calls back through the import bridge
// once per distinct @import. Calls are safe from multiple goroutines and
// are executed one at a time.
func (a *Adapter) Parse(src source.Source) (platform.ASTHandle, error) {
	if src == nil {
		return nil, errors.New("source is nil")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.parseLocked(src)
}

// parseLocked runs a parse while holding a.mu. The import bridge re-enters
// here for nested documents, on the same goroutine, under the same lock.
func (a *Adapter) parseLocked(src source.Source) (*AST, error) {
	logger := a.logger.WithGroup("Parse").With("filename", src.Filename())
	logger.Debug("parse starting")

	result, err := a.entry(gojaLib.Undefined(), a.bindSource(src))
	if err != nil {
		logger.Warn("parse failed", "error", err)
		return nil, &ParseError{Filename: src.Filename(), Err: translateVMError(err)}
	}
	if result == nil || gojaLib.IsUndefined(result) || gojaLib.IsNull(result) {
		// The compiler's parse callback never fired or reported nothing.
		logger.Warn("parse returned no AST")
		return nil, &ParseError{Filename: src.Filename(), Err: ErrNoAST}
	}

	logger.Debug("parse complete")
	return &AST{
		adapter:  a,
		value:    result,
		filename: src.Filename(),
	}, nil
}

// translateVMError unwraps an interpreter exception back into the host
// error that was thrown through the bridge, when there is one. Script-level
// failures (syntax errors and the like) pass through unchanged.
func translateVMError(err error) error {
	var ex *gojaLib.Exception
	if errors.As(err, &ex) {
		if cause, ok := ex.Value().Export().(error); ok {
			return cause
		}
	}
	return err
}
