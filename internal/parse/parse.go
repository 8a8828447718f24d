// Package parse loads the public function declarations of a preprocessed C
// translation unit through an AST-parsing capability.
package parse

import (
	"fmt"
	"strings"

	"github.com/lvbind/lvglgen/internal/common"
)

// Parser turns a translation unit into its top-level declarations. The
// generator depends only on this interface, not on a particular C parser.
type Parser interface {
	Parse(path string, args []string) ([]Decl, error)
}

// Decl is one top-level declaration, with just enough introspection to decide
// whether it is a wrappable function.
type Decl interface {
	Function() bool
	Name() string   // empty when the declaration is unnamed
	Internal() bool // internal (static) linkage
	Result() string // return type spelling, "void" included
	Params() []Param
}

// Param is one function parameter: name and type spelling.
type Param interface {
	Name() string
	Type() string
}

// Load parses the translation unit at path and returns every externally
// linked, named function declaration whose name carries the library prefix,
// in declaration order. A declaration the parser presents with a missing
// piece (unnamed parameter, empty result spelling) fails the whole load; the
// input is assumed to be well-formed C.
func Load(p Parser, path string, args []string, prefix string) ([]common.Func, error) {
	decls, err := p.Parse(path, args)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var funcs []common.Func
	for _, d := range decls {
		if !d.Function() || d.Name() == "" || d.Internal() {
			continue
		}
		fn, err := convert(d)
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(fn.Name, prefix) {
			continue
		}
		funcs = append(funcs, fn)
	}
	return funcs, nil
}

func convert(d Decl) (common.Func, error) {
	fn := common.Func{Name: d.Name()}

	result := d.Result()
	if result == "" {
		return common.Func{}, fmt.Errorf("function %s: result type missing", fn.Name)
	}
	if result != "void" {
		fn.Ret = &common.Type{Spelling: result}
	}

	for i, p := range d.Params() {
		if p.Name() == "" {
			return common.Func{}, fmt.Errorf("function %s: parameter %d has no name", fn.Name, i)
		}
		fn.Args = append(fn.Args, common.Arg{
			Name: p.Name(),
			Type: common.Type{Spelling: p.Type()},
		})
	}
	return fn, nil
}
