package goja

import (
	"errors"
	"fmt"
)

var ErrInitFailed = errors.New("unable to initialize compiler scope")
var ErrNoAST = errors.New("compiler returned no AST")

// ParseError reports a failed parse, naming the offending document and
// wrapping the original cause. No partial AST accompanies it.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse less file %s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
