package platform

import (
	"github.com/robbyt/go-lessjs/platform/source"
)

// ASTHandle is the opaque parse result produced by the embedded compiler.
// The handle is owned by the caller, but the underlying object still lives
// inside the interpreter, so rendering re-enters the engine.
type ASTHandle interface {
	// Interface returns the engine-native AST object. Callers should treat
	// it as opaque; its shape belongs to the bundled compiler, not to this
	// module.
	Interface() any

	// Filename returns the identity of the document this AST was parsed from.
	Filename() string

	// ToCSS renders the AST to a CSS string. When compress is true the
	// output is minified.
	ToCSS(compress bool) (string, error)
}

// Parser is the interface for the generic stylesheet parser.
type Parser interface {
	// Parse runs the embedded compiler over the given source document,
	// resolving any imports through the source's ResolveImport, and returns
	// the resulting AST handle. On failure no partial AST is returned.
	Parse(src source.Source) (ASTHandle, error)
}
