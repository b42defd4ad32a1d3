package goja

import (
	"fmt"

	gojaLib "github.com/dop251/goja"
)

// AST is the opaque parse result. The underlying object lives inside the
// adapter's runtime, so rendering re-enters the runtime under the same lock
// as Parse. The host neither inspects nor mutates its structure.
type AST struct {
	adapter  *Adapter
	value    gojaLib.Value
	filename string
}

func (t *AST) String() string {
	return fmt.Sprintf("goja.AST{Filename: %q}", t.filename)
}

// Interface returns the engine-native AST object as a goja value.
func (t *AST) Interface() any {
	return t.value
}

// Filename returns the identity of the document this AST was parsed from.
func (t *AST) Filename() string {
	return t.filename
}

// ToCSS renders the tree through the compiler's own toCSS function.
func (t *AST) ToCSS(compress bool) (string, error) {
	t.adapter.mu.Lock()
	defer t.adapter.mu.Unlock()

	obj := t.value.ToObject(t.adapter.vm)
	toCSS, ok := gojaLib.AssertFunction(obj.Get("toCSS"))
	if !ok {
		return "", fmt.Errorf("AST for %s has no toCSS function", t.filename)
	}

	opts := t.adapter.vm.NewObject()
	_ = opts.Set("compress", compress)

	result, err := toCSS(obj, opts)
	if err != nil {
		return "", fmt.Errorf("unable to render %s to CSS: %w", t.filename, translateVMError(err))
	}
	return result.String(), nil
}
