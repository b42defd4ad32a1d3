package goja

import (
	"fmt"

	gojaLib "github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"
	"github.com/robbyt/go-lessjs/engines/goja/internal/shim"
)

// Script names reported in interpreter stack traces.
const (
	browserScriptName  = "browser.js"
	compilerScriptName = "less.js"
	importerScriptName = "importer.js"
	parserScriptName   = "parser.js"
)

// bootstrap builds the execution scope: the module registry and console,
// the log sink under the fixed global name "log", then the browser shim,
// the compiler asset, and the import-bridge installer, in that order. The
// shim must precede the compiler because the compiler reads browser globals
// at load time, and the installer must follow it because it attaches the
// bridge onto the compiler's parser namespace. Finally the entry-point
// wrapper is compiled into a callable bound to the scope.
//
// Runs once per adapter; any failure is wrapped into ErrInitFailed by New
// and the adapter is never handed out.
func (a *Adapter) bootstrap() error {
	logger := a.logger.WithGroup("bootstrap")
	logger.Debug("initializing compiler scope")

	vm := gojaLib.New()

	registry := require.NewRegistry()
	registry.RegisterNativeModule(console.ModuleName, console.RequireWithPrinter(newSlogPrinter(a.logger)))
	registry.Enable(vm)
	console.Enable(vm)

	if err := vm.Set("log", newLogBinding(vm, a.logger)); err != nil {
		return fmt.Errorf("failed to bind log sink: %w", err)
	}

	for _, script := range []struct {
		name string
		src  string
	}{
		{browserScriptName, shim.Browser},
		{compilerScriptName, a.compilerSrc},
		{importerScriptName, shim.ImporterInstaller},
	} {
		if _, err := vm.RunScript(script.name, script.src); err != nil {
			return fmt.Errorf("failed to evaluate %s: %w", script.name, err)
		}
	}

	entryProgram, err := gojaLib.Compile(parserScriptName, shim.EntryPoint, false)
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", parserScriptName, err)
	}
	entryValue, err := vm.RunProgram(entryProgram)
	if err != nil {
		return fmt.Errorf("failed to install %s: %w", parserScriptName, err)
	}
	entry, ok := gojaLib.AssertFunction(entryValue)
	if !ok {
		return fmt.Errorf("%s did not evaluate to a function", parserScriptName)
	}

	a.vm = vm
	a.entry = entry
	logger.Debug("compiler scope ready")
	return nil
}
