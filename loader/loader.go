// Package loader decodes expression trees from YAML documents.
//
// Every node is a mapping with a "kind" key naming its variant:
//
//	kind: binary
//	op: "+"
//	left: a
//	right: {kind: int, raw: "1"}
//
// Scalars are shorthand: a plain string is an identifier, and YAML ints,
// floats, booleans and null are the matching literals with their raw text
// preserved. A sequence is an array literal. Kind names and keys may be
// written in any case style; they are normalised to snake_case.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rubiojr/exprgen/ast"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
	DefaultMaxDepth = 1000
	// DefaultMaxNodes is the node budget used when Options.MaxNodes is zero.
	DefaultMaxNodes = 1_000_000
)

// Options configures Load. Both limits are checked while decoding, so a
// document that breaks them is rejected before it is fully expanded.
type Options struct {
	// MaxDepth rejects expressions nested deeper than this.
	MaxDepth int
	// MaxNodes rejects documents that decode to more expression and type
	// nodes than this, counting every expansion of a YAML alias.
	MaxNodes int
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

func (o Options) maxNodes() int {
	if o.MaxNodes > 0 {
		return o.MaxNodes
	}
	return DefaultMaxNodes
}

// Error is a decoding error at a position in the source document.
type Error struct {
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// Load decodes every document in r into an expression.
func Load(r io.Reader, opts Options) ([]ast.Expr, error) {
	dec := yaml.NewDecoder(r)
	d := newDecoder(opts)
	var exprs []ast.Expr
	for i := 1; ; i++ {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		root := &doc
		if doc.Kind == yaml.DocumentNode {
			if len(doc.Content) == 0 {
				continue
			}
			root = doc.Content[0]
		}
		d.reset()
		e, err := d.expr(root)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// LoadFile decodes every document in the named file.
func LoadFile(path string, opts Options) ([]ast.Expr, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer fh.Close()
	exprs, err := Load(fh, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return exprs, nil
}

// Kinds returns the accepted expression kind names, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(exprKinds))
	for k := range exprKinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
