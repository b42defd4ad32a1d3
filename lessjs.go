// Package lessjs embeds the LESS stylesheet compiler in-process and exposes
// a parse API over it. The compiler itself is an unmodified JavaScript
// asset executed on an embedded interpreter; this package supplies the
// execution scope, the browser-environment shims, and the import bridge
// that calls back into host code to resolve @import references.
package lessjs

import (
	"io/fs"

	gojaEngine "github.com/robbyt/go-lessjs/engines/goja"
	"github.com/robbyt/go-lessjs/platform"
	"github.com/robbyt/go-lessjs/platform/source"
)

// Parse parses the given source document with the process-default adapter,
// bootstrapping the embedded compiler on first use. Imports are resolved
// through the source's ResolveImport.
func Parse(src source.Source) (platform.ASTHandle, error) {
	adapter, err := gojaEngine.Default()
	if err != nil {
		return nil, err
	}
	return adapter.Parse(src)
}

// ParseMap parses the named document from an in-memory file set, resolving
// imports against the other entries in the map.
func ParseMap(filename string, files map[string]string) (platform.ASTHandle, error) {
	src, err := source.NewFromMap(filename, files)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}

// ParseFS parses the named document from fsys, resolving imports relative
// to the importing file.
func ParseFS(fsys fs.FS, name string) (platform.ASTHandle, error) {
	src, err := source.NewFromFS(fsys, name)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}
