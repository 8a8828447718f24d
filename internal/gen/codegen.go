// Package gen turns loaded function declarations into widget groups and
// emits Rust wrapper source for them.
package gen

import (
	"github.com/lvbind/lvglgen/internal/common"
	"github.com/lvbind/lvglgen/internal/parse"
)

// CodeGen drives one generation run: the translation unit is parsed and the
// widget set extracted once, at construction. There is no caching across
// instances; a fresh run means a fresh CodeGen.
type CodeGen struct {
	functions []common.Func
	widgets   map[string]*common.Widget
}

func New(cfg *common.Config, p parse.Parser) (*CodeGen, error) {
	functions, err := parse.Load(p, cfg.Input, cfg.ClangArgs, cfg.Prefix)
	if err != nil {
		return nil, err
	}
	return &CodeGen{
		functions: functions,
		widgets:   ExtractWidgets(cfg.Prefix, functions),
	}, nil
}

// Widgets returns the extracted widget set. Enumeration order is unspecified
// and must not be relied upon.
func (c *CodeGen) Widgets() []*common.Widget {
	widgets := make([]*common.Widget, 0, len(c.widgets))
	for _, w := range c.widgets {
		widgets = append(widgets, w)
	}
	return widgets
}

// FunctionNames lists every loaded function name, in declaration order.
func (c *CodeGen) FunctionNames() []string {
	names := make([]string, 0, len(c.functions))
	for _, f := range c.functions {
		names = append(names, f.Name)
	}
	return names
}
