package gen

import (
	"regexp"
	"strings"

	"github.com/lvbind/lvglgen/internal/common"
)

// constructorArity is the create-function convention: an object-pointer
// parent plus the unused copy-source pointer.
const constructorArity = 2

// WidgetNames returns the canonical name of every widget following the
// create-function convention: "<prefix><name>_create" with exactly two
// parameters. Create functions with any other arity are excluded.
func WidgetNames(prefix string, funcs []common.Func) []string {
	create := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + "([^_]+)_create$")

	var names []string
	for _, f := range funcs {
		m := create.FindStringSubmatch(f.Name)
		if m == nil || len(f.Args) != constructorArity {
			continue
		}
		names = append(names, m[1])
	}
	return names
}

// ExtractWidgets partitions funcs into widgets. A function joins every widget
// whose "<prefix><name>" is a prefix of its own name, provided its first
// parameter is object-typed; the create function itself qualifies like any
// other method. No word boundary is required after the widget name, so a
// widget whose name is a prefix of another widget's name claims that widget's
// functions too. Enumeration order of the result is unspecified.
func ExtractWidgets(prefix string, funcs []common.Func) map[string]*common.Widget {
	widgets := make(map[string]*common.Widget)

	names := WidgetNames(prefix, funcs)
	for _, name := range names {
		if _, ok := widgets[name]; !ok {
			widgets[name] = &common.Widget{Name: name}
		}
	}

	for _, f := range funcs {
		for _, name := range names {
			if !strings.HasPrefix(f.Name, prefix+name) || !f.IsMethod() {
				continue
			}
			w := widgets[name]
			w.Methods = append(w.Methods, f)
		}
	}
	return widgets
}
