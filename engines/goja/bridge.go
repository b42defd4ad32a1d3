package goja

import (
	gojaLib "github.com/dop251/goja"
	"github.com/robbyt/go-lessjs/platform/source"
)

// bindSource converts a host source into the object shape the compiler
// expects. This is the only place host values cross into the interpreter:
// the entry point receives the bound root source, stashes it into the
// parser configuration as rootfile, and the import bridge calls back
// through these functions for every @import.
func (a *Adapter) bindSource(src source.Source) *gojaLib.Object {
	// Set only fails on non-extensible objects; these are fresh.
	obj := a.vm.NewObject()

	_ = obj.Set("getFilename", func() string {
		return src.Filename()
	})

	_ = obj.Set("getSource", func() string {
		contents, err := src.Contents()
		if err != nil {
			a.throw(err)
		}
		return contents
	})

	_ = obj.Set("resolveImport", func(path string) *gojaLib.Object {
		imported, err := src.ResolveImport(path)
		if err != nil {
			a.throw(err)
		}
		return a.bindSource(imported)
	})

	// getAST re-enters the parse machinery for this source. The importer
	// uses it to obtain a nested document's tree; resolution or parse
	// failures terminate the whole parse rather than being reported through
	// the importer's error slot.
	_ = obj.Set("getAST", func() gojaLib.Value {
		ast, err := a.parseLocked(src)
		if err != nil {
			a.throw(err)
		}
		return ast.value
	})

	return obj
}

// throw raises err as an interpreter exception. The original error is
// recovered host-side by translateVMError. Never returns.
func (a *Adapter) throw(err error) {
	panic(a.vm.ToValue(err))
}
