package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromMap(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.less":  ".x { color: red; }",
		"other.less": ".y { color: blue; }",
	}

	tests := []struct {
		name     string
		filename string
		files    map[string]string
		wantErr  error
	}{
		{"valid document", "main.less", files, nil},
		{"empty filename", "", files, ErrFilenameEmpty},
		{"whitespace filename", "   ", files, ErrFilenameEmpty},
		{"unknown document", "missing.less", files, ErrImportNotFound},
		{"empty content", "empty.less", map[string]string{"empty.less": "  "}, ErrSourceEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src, err := NewFromMap(tt.filename, tt.files)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, src)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, src)
			assert.Equal(t, tt.filename, src.Filename())

			contents, err := src.Contents()
			require.NoError(t, err)
			assert.Equal(t, tt.files[tt.filename], contents)
		})
	}
}

func TestFromMap_ResolveImport(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.less":   `@import "colors"; .x { color: red; }`,
		"colors.less": "@red: #f00;",
		"reset.css":   "* { margin: 0; }",
	}

	src, err := NewFromMap("main.less", files)
	require.NoError(t, err)

	t.Run("extension inferred", func(t *testing.T) {
		t.Parallel()
		imported, err := src.ResolveImport("colors")
		require.NoError(t, err)
		assert.Equal(t, "colors.less", imported.Filename())
	})

	t.Run("exact path with extension", func(t *testing.T) {
		t.Parallel()
		imported, err := src.ResolveImport("reset.css")
		require.NoError(t, err)
		assert.Equal(t, "reset.css", imported.Filename())
	})

	t.Run("leading ./ stripped", func(t *testing.T) {
		t.Parallel()
		imported, err := src.ResolveImport("./colors")
		require.NoError(t, err)
		assert.Equal(t, "colors.less", imported.Filename())
	})

	t.Run("unknown path fails loudly", func(t *testing.T) {
		t.Parallel()
		imported, err := src.ResolveImport("nope")
		require.ErrorIs(t, err, ErrImportNotFound)
		assert.Nil(t, imported)
		assert.Contains(t, err.Error(), "main.less", "error names the importing document")
	})
}

func TestFromMap_String(t *testing.T) {
	t.Parallel()
	src, err := NewFromMap("main.less", map[string]string{"main.less": ".x{}"})
	require.NoError(t, err)
	assert.Contains(t, src.String(), "main.less")
}
