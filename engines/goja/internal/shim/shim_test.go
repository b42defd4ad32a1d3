package shim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrowser(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Browser)
	for _, global := range []string{"window", "location", "document", "setInterval"} {
		assert.Contains(t, Browser, "var "+global, "browser shim defines %s", global)
	}
	assert.Contains(t, Browser, "getElementById")
	assert.Contains(t, Browser, "getElementsByTagName")
	assert.Contains(t, Browser, "return 0;", "setInterval returns the zero sentinel handle")
}

func TestImporterInstaller(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, ImporterInstaller)
	assert.Contains(t, ImporterInstaller, "window.less.Parser.importer",
		"installer attaches onto the parser configuration namespace")
	assert.Contains(t, ImporterInstaller, "env.rootfile.resolveImport")
	assert.Contains(t, ImporterInstaller, "fn(null,",
		"the continuation's error slot is never used")
}

func TestEntryPoint(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasPrefix(EntryPoint, "(function"),
		"entry point is a single function expression")
	assert.Contains(t, EntryPoint, "rootfile: lessfile",
		"entry point stashes the root source for the import bridge")
	assert.Contains(t, EntryPoint, "if (err) throw err;")
}
