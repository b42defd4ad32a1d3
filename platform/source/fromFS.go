package source

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// FromFS implements the Source interface over an io/fs.FS, so stylesheets
// can come from a directory tree, an embed.FS, or anything else satisfying
// fs.FS. Import paths are resolved relative to the importing document's
// directory, with the same ".less" extension inference as FromMap.
type FromFS struct {
	fsys fs.FS
	name string
}

// NewFromFS creates a source for the named document inside fsys. The name
// must be a valid fs.FS path and the file must exist.
func NewFromFS(fsys fs.FS, name string) (*FromFS, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrFilenameEmpty
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: invalid path %q", ErrImportNotFound, name)
	}

	if _, err := fs.Stat(fsys, name); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrImportNotFound, name, err)
	}

	return &FromFS{
		fsys: fsys,
		name: name,
	}, nil
}

func (s *FromFS) String() string {
	return fmt.Sprintf("source.FromFS{Filename: %q}", s.name)
}

// Filename returns the document's path within the filesystem.
func (s *FromFS) Filename() string {
	return s.name
}

// Contents reads the document from the filesystem.
func (s *FromFS) Contents() (string, error) {
	b, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", s.name, err)
	}
	return string(b), nil
}

// ResolveImport resolves the path relative to this document's directory and
// returns a source for the target file.
func (s *FromFS) ResolveImport(p string) (Source, error) {
	dir := path.Dir(s.name)
	for _, candidate := range importCandidates(p) {
		resolved := path.Clean(path.Join(dir, candidate))
		if !fs.ValidPath(resolved) {
			continue
		}
		if _, err := fs.Stat(s.fsys, resolved); err == nil {
			return &FromFS{fsys: s.fsys, name: resolved}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (imported from %q)", ErrImportNotFound, p, s.name)
}
