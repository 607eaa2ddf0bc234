package loader

import (
	"fmt"
	"strconv"

	"github.com/iancoleman/strcase"
	"github.com/rubiojr/exprgen/ast"
	"gopkg.in/yaml.v3"
)

type decoder struct {
	f        *ast.Factory
	maxDepth int
	maxNodes int

	depth  int                 // expressions currently being decoded
	nodes  int                 // expression and type nodes decoded so far
	active map[*yaml.Node]bool // nodes on the current decoding path
}

func newDecoder(opts Options) *decoder {
	return &decoder{
		f:        ast.NewFactory(),
		maxDepth: opts.maxDepth(),
		maxNodes: opts.maxNodes(),
		active:   make(map[*yaml.Node]bool),
	}
}

// reset prepares d for the next document.
func (d *decoder) reset() {
	d.depth, d.nodes = 0, 0
	clear(d.active)
}

// enter marks n as being decoded. An alias that leads back to a node still
// being decoded is a cycle; aliases reused many times can expand a small
// document into a huge tree, so every entry counts against maxNodes.
func (d *decoder) enter(n *yaml.Node) error {
	if d.active[n] {
		return d.errorf(n, "alias cycle through anchor %q", n.Anchor)
	}
	d.nodes++
	if d.nodes > d.maxNodes {
		return d.errorf(n, "document expands to more than %d nodes", d.maxNodes)
	}
	d.active[n] = true
	return nil
}

func (d *decoder) leave(n *yaml.Node) {
	delete(d.active, n)
}

func (d *decoder) errorf(n *yaml.Node, format string, args ...any) *Error {
	return &Error{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(format, args...)}
}

// normalize maps FunctionCall, functionCall and function-call to function_call.
func normalize(s string) string {
	return strcase.ToSnake(s)
}

// resolve follows aliases to the node they point at.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// field returns the value for key in mapping n, or nil when absent.
func field(n *yaml.Node, key string) *yaml.Node {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if normalize(n.Content[i].Value) == key {
			return resolve(n.Content[i+1])
		}
	}
	return nil
}

// checkKeys rejects keys outside allowed. "kind" is always allowed.
func (d *decoder) checkKeys(n *yaml.Node, allowed []string) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := normalize(n.Content[i].Value)
		if k == "kind" {
			continue
		}
		ok := false
		for _, a := range allowed {
			if a == k {
				ok = true
				break
			}
		}
		if !ok {
			return d.errorf(n.Content[i], "unexpected key %q", n.Content[i].Value)
		}
	}
	return nil
}

func (d *decoder) required(n *yaml.Node, key string) (*yaml.Node, error) {
	v := field(n, key)
	if v == nil {
		return nil, d.errorf(n, "missing %q", key)
	}
	return v, nil
}

func (d *decoder) scalar(n *yaml.Node, what string) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", d.errorf(n, "%s must be a scalar", what)
	}
	return n.Value, nil
}

// str returns the scalar at key, or "" when absent.
func (d *decoder) str(n *yaml.Node, key string) (string, error) {
	v := field(n, key)
	if v == nil {
		return "", nil
	}
	return d.scalar(v, key)
}

func (d *decoder) requiredStr(n *yaml.Node, key string) (string, error) {
	v, err := d.required(n, key)
	if err != nil {
		return "", err
	}
	s, err := d.scalar(v, key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", d.errorf(v, "%q must not be empty", key)
	}
	return s, nil
}

func (d *decoder) boolField(n *yaml.Node, key string) (bool, error) {
	v := field(n, key)
	if v == nil {
		return false, nil
	}
	var b bool
	if v.Kind != yaml.ScalarNode || v.Decode(&b) != nil {
		return false, d.errorf(v, "%q must be a boolean", key)
	}
	return b, nil
}

func (d *decoder) intField(n *yaml.Node, key string) (int, bool, error) {
	v := field(n, key)
	if v == nil {
		return 0, false, nil
	}
	i, err := strconv.Atoi(v.Value)
	if v.Kind != yaml.ScalarNode || err != nil || i < 0 {
		return 0, false, d.errorf(v, "%q must be a non-negative integer", key)
	}
	return i, true, nil
}

// seq returns the items of the sequence at key. present reports whether the
// key exists, so an explicit empty sequence can be told apart from none.
func (d *decoder) seq(n *yaml.Node, key string) (items []*yaml.Node, present bool, err error) {
	v := field(n, key)
	if v == nil {
		return nil, false, nil
	}
	if v.Kind != yaml.SequenceNode {
		return nil, true, d.errorf(v, "%q must be a sequence", key)
	}
	items = make([]*yaml.Node, len(v.Content))
	for i, c := range v.Content {
		items[i] = resolve(c)
	}
	return items, true, nil
}

func (d *decoder) strList(n *yaml.Node, key string) ([]string, error) {
	items, _, err := d.seq(n, key)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, it := range items {
		s, err := d.scalar(it, key+" item")
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) exprField(n *yaml.Node, key string) (ast.Expr, error) {
	v, err := d.required(n, key)
	if err != nil {
		return nil, err
	}
	return d.expr(v)
}

func (d *decoder) optExpr(n *yaml.Node, key string) (ast.Expr, error) {
	v := field(n, key)
	if v == nil {
		return nil, nil
	}
	return d.expr(v)
}

func (d *decoder) exprList(n *yaml.Node, key string) ([]ast.Expr, error) {
	items, _, err := d.seq(n, key)
	if err != nil {
		return nil, err
	}
	return d.exprs(items)
}

func (d *decoder) exprs(items []*yaml.Node) ([]ast.Expr, error) {
	var out []ast.Expr
	for _, it := range items {
		e, err := d.expr(it)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// isRecord reports whether n is a mapping without a kind key, the form
// used for arguments, tuple elements and other non-expression records.
func isRecord(n *yaml.Node) bool {
	return n.Kind == yaml.MappingNode && field(n, "kind") == nil
}
