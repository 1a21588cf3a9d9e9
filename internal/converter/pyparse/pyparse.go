// Package pyparse wraps the gpython parser behind a single entry point.
// It is the only package that talks to the parsing library directly;
// everything downstream works on *ast.Module.
package pyparse

import (
	"fmt"
	"strings"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/parser"
)

// Parse parses Python source into a module AST. F-string literals are
// rewritten into plain concatenations first, since the underlying grammar
// predates them.
func Parse(source string) (*ast.Module, error) {
	expanded := ExpandFStrings(source)

	tree, err := parser.Parse(strings.NewReader(expanded), "<input>", "exec")
	if err != nil {
		return nil, err
	}

	mod, ok := tree.(*ast.Module)
	if !ok {
		return nil, fmt.Errorf("expected module, got %T", tree)
	}
	return mod, nil
}
