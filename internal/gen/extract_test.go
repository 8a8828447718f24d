package gen

import (
	"sort"
	"testing"

	"github.com/lvbind/lvglgen/internal/common"
)

func fn(name string, args ...common.Arg) common.Func {
	return common.Func{Name: name, Args: args}
}

func arg(name, spelling string) common.Arg {
	return common.Arg{Name: name, Type: common.Type{Spelling: spelling}}
}

func objArg(name string) common.Arg {
	return arg(name, "lv_obj_t *")
}

func TestWidgetNames(t *testing.T) {
	funcs := []common.Func{
		fn("lv_obj_create", arg("parent", "abc"), arg("copy_from", "bcf")),
		fn("lv_btn_create", arg("parent", "abc"), arg("copy_from", "bcf")),
		fn("lv_do_something", arg("parent", "abc"), arg("copy_from", "bcf")),
		fn("lv_invalid_create", arg("parent", "abc")), // wrong arity
		fn("lv_cb_create", arg("parent", "abc"), arg("copy_from", "bcf")),
	}

	names := WidgetNames("lv_", funcs)
	sort.Strings(names)

	want := []string{"btn", "cb", "obj"}
	if len(names) != len(want) {
		t.Fatalf("WidgetNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("WidgetNames() = %v, want %v", names, want)
		}
	}
}

func TestExtractWidgetsAssignsMethods(t *testing.T) {
	funcs := []common.Func{
		fn("lv_arc_create", objArg("par"), arg("copy", "const lv_obj_t *")),
		fn("lv_arc_set_bg_end_angle", objArg("arc"), arg("end", "uint16_t")),
		fn("lv_label_set_text", objArg("label"), arg("text", "const char *")),
	}

	widgets := ExtractWidgets("lv_", funcs)

	arc, ok := widgets["arc"]
	if !ok {
		t.Fatal("widget arc not extracted")
	}

	got := methodNames(arc)
	want := []string{"lv_arc_create", "lv_arc_set_bg_end_angle"}
	if !equalSets(got, want) {
		t.Errorf("arc methods = %v, want %v", got, want)
	}

	// lv_label_set_text matches no discovered widget and is dropped.
	if _, ok := widgets["label"]; ok {
		t.Error("label has no create function and must not become a widget")
	}
}

func TestExtractWidgetsKeepsEmptyWidget(t *testing.T) {
	// The create function's first parameter is not object-typed, so no
	// function qualifies as a method; the widget itself is still discovered.
	funcs := []common.Func{
		fn("lv_cb_create", arg("parent", "abc"), arg("copy_from", "bcf")),
	}

	widgets := ExtractWidgets("lv_", funcs)

	cb, ok := widgets["cb"]
	if !ok {
		t.Fatal("widget cb not extracted")
	}
	if len(cb.Methods) != 0 {
		t.Errorf("cb has %d methods, want 0", len(cb.Methods))
	}
}

func TestExtractWidgetsPrefixOverlap(t *testing.T) {
	// "btn" is a literal prefix of "btnmatrix"; the matching rule requires no
	// word boundary, so btnmatrix functions are assigned to both widgets.
	funcs := []common.Func{
		fn("lv_btn_create", objArg("par"), arg("copy", "const lv_obj_t *")),
		fn("lv_btnmatrix_create", objArg("par"), arg("copy", "const lv_obj_t *")),
		fn("lv_btnmatrix_set_recolor", objArg("btnm"), arg("en", "bool")),
	}

	widgets := ExtractWidgets("lv_", funcs)

	btnm := methodNames(widgets["btnmatrix"])
	if !equalSets(btnm, []string{"lv_btnmatrix_create", "lv_btnmatrix_set_recolor"}) {
		t.Errorf("btnmatrix methods = %v", btnm)
	}

	btn := methodNames(widgets["btn"])
	want := []string{"lv_btn_create", "lv_btnmatrix_create", "lv_btnmatrix_set_recolor"}
	if !equalSets(btn, want) {
		t.Errorf("btn methods = %v, want over-matched %v", btn, want)
	}
}

func TestExtractWidgetsIdempotent(t *testing.T) {
	funcs := []common.Func{
		fn("lv_arc_create", objArg("par"), arg("copy", "const lv_obj_t *")),
		fn("lv_arc_set_bg_end_angle", objArg("arc"), arg("end", "uint16_t")),
		fn("lv_btn_create", objArg("par"), arg("copy", "const lv_obj_t *")),
	}

	first := ExtractWidgets("lv_", funcs)
	second := ExtractWidgets("lv_", funcs)

	if len(first) != len(second) {
		t.Fatalf("widget set sizes differ: %d vs %d", len(first), len(second))
	}
	for name, w := range first {
		other, ok := second[name]
		if !ok {
			t.Fatalf("widget %s missing from second run", name)
		}
		if !equalSets(methodNames(w), methodNames(other)) {
			t.Errorf("widget %s method sets differ between runs", name)
		}
		// Per-function argument order is stable across runs.
		for i := range w.Methods {
			for j := range w.Methods[i].Args {
				if w.Methods[i].Args[j] != other.Methods[i].Args[j] {
					t.Errorf("widget %s method %d argument %d differs", name, i, j)
				}
			}
		}
	}
}

func methodNames(w *common.Widget) []string {
	var names []string
	for _, m := range w.Methods {
		names = append(names, m.Name)
	}
	return names
}

func equalSets(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	g := append([]string(nil), got...)
	w := append([]string(nil), want...)
	sort.Strings(g)
	sort.Strings(w)
	for i := range g {
		if g[i] != w[i] {
			return false
		}
	}
	return true
}
