package source

// Source is an interface used by the engine to read stylesheet documents
// and to resolve their imports. Implementations are expected to be
// immutable: the same Source must keep returning the same filename,
// contents, and resolutions for its lifetime.
type Source interface {
	// Filename returns the document's identity, used in error messages and
	// passed through to the embedded compiler for its own diagnostics.
	Filename() string

	// Contents returns the raw stylesheet text.
	Contents() (string, error)

	// ResolveImport resolves an import path appearing in this document to
	// another Source. Unknown paths must fail loudly with an error wrapping
	// ErrImportNotFound; there is no silent fallback.
	ResolveImport(path string) (Source, error)
}
