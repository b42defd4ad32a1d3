package source

import (
	"fmt"
	"path"
	"strings"
)

// FromMap implements the Source interface over an in-memory set of
// documents, keyed by filename. Import paths are looked up directly in the
// map, with a ".less" extension inferred when the path has none. Useful for
// tests and for stylesheets assembled at runtime.
type FromMap struct {
	filename string
	files    map[string]string
}

// NewFromMap creates a source for the named document inside the given file
// set. The document must exist in the map and must be non-empty.
func NewFromMap(filename string, files map[string]string) (*FromMap, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, ErrFilenameEmpty
	}

	content, ok := files[filename]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrImportNotFound, filename)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: %q", ErrSourceEmpty, filename)
	}

	return &FromMap{
		filename: filename,
		files:    files,
	}, nil
}

func (s *FromMap) String() string {
	return fmt.Sprintf("source.FromMap{Filename: %q}", s.filename)
}

// Filename returns the document's key in the file set.
func (s *FromMap) Filename() string {
	return s.filename
}

// Contents returns the document's text.
func (s *FromMap) Contents() (string, error) {
	content, ok := s.files[s.filename]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrImportNotFound, s.filename)
	}
	return content, nil
}

// ResolveImport looks the path up in the file set, trying the path as-is
// and then with a ".less" extension appended.
func (s *FromMap) ResolveImport(path string) (Source, error) {
	for _, candidate := range importCandidates(path) {
		if _, ok := s.files[candidate]; ok {
			return &FromMap{filename: candidate, files: s.files}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (imported from %q)", ErrImportNotFound, path, s.filename)
}

// importCandidates returns the filenames an import path may refer to, in
// lookup order. The compiler passes import paths through verbatim, so the
// ".less" extension inference lives host-side.
func importCandidates(p string) []string {
	p = strings.TrimPrefix(strings.TrimSpace(p), "./")
	if path.Ext(p) != "" {
		return []string{p}
	}
	return []string{p, p + ".less"}
}
