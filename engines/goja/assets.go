package goja

import (
	_ "embed"
)

// compilerSource is the bundled compiler asset, evaluated into the
// execution scope at bootstrap. Host code treats it as opaque; the
// embedding surface it must expose is described in internal/shim.
//
//go:embed assets/less.js
var compilerSource string
