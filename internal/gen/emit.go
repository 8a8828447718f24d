package gen

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/golang-cz/textcase"

	"github.com/lvbind/lvglgen/internal/common"
)

var widgetTmpl = template.Must(template.New("widget").Parse(`define_object!({{.Ident}});

impl {{.Ident}} {
{{.Methods}}}
`))

// The copy-source parameter of the native create call is never surfaced;
// construction by copy is not supported, so the second argument is null.
var constructorTmpl = template.Must(template.New("constructor").Parse(`pub fn new<C>(parent: &mut C) -> crate::LvResult<Self>
where
    C: crate::NativeObject,
{
    unsafe {
        let ptr = lvgl_sys::{{.Native}}(parent.raw()?.as_mut(), core::ptr::null_mut());
        let raw = core::ptr::NonNull::new(ptr)?;
        let core = <crate::Obj as crate::Widget>::from_raw(raw);
        Ok(Self { core })
    }
}
`))

// Emitter produces Rust source fragments, one widget module at a time.
type Emitter struct {
	prefix     string
	baseObject string
	types      *common.TypeMap
}

func NewEmitter(cfg *common.Config) *Emitter {
	return &Emitter{
		prefix:     cfg.Prefix,
		baseObject: cfg.BaseObject,
		types:      common.NewTypeMap(cfg.TypeMap),
	}
}

// Widget emits the object declaration and implementation block for w. The
// generic base object is hand-written in the runtime crate and reports
// ErrSkip; a method reporting ErrSkip is left out without failing the widget.
func (e *Emitter) Widget(w *common.Widget) (string, error) {
	if w.Name == e.baseObject {
		return "", common.ErrSkip
	}

	var methods []string
	for _, m := range w.Methods {
		code, err := e.Method(w, m)
		if errors.Is(err, common.ErrSkip) {
			continue
		}
		if err != nil {
			return "", err
		}
		methods = append(methods, code)
	}

	var b strings.Builder
	err := widgetTmpl.Execute(&b, struct {
		Ident   string
		Methods string
	}{
		Ident:   textcase.PascalCase(w.Name),
		Methods: indent(strings.Join(methods, "\n")),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Method emits one wrapped function of w. The create function becomes the
// generic constructor and never skips; a function with a return type, or with
// a non-receiver argument the type table cannot resolve, reports ErrSkip.
func (e *Emitter) Method(w *common.Widget, f common.Func) (string, error) {
	name := f.LocalName(e.prefix, w.Name)
	if name == "create" {
		return e.constructor(f)
	}

	// Methods returning values are not wrapped yet.
	if f.Ret != nil {
		return "", common.ErrSkip
	}

	var params, processing, call []string
	for i, a := range f.Args {
		if i == 0 {
			if a.Type.IsConst() {
				params = append(params, "&self")
			} else {
				params = append(params, "&mut self")
			}
			call = append(call, "self.core.raw()?.as_mut()")
			continue
		}

		decl, err := e.paramDecl(a)
		if err != nil {
			return "", err
		}
		params = append(params, decl)
		if stmt := marshalStmt(a); stmt != "" {
			processing = append(processing, stmt)
		}
		call = append(call, callExpr(a))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "pub fn %s(%s) -> crate::LvResult<()> {\n", name, strings.Join(params, ", "))
	for _, stmt := range processing {
		fmt.Fprintf(&b, "    %s\n", stmt)
	}
	b.WriteString("    unsafe {\n")
	fmt.Fprintf(&b, "        lvgl_sys::%s(%s);\n", f.Name, strings.Join(call, ", "))
	b.WriteString("    }\n")
	b.WriteString("    Ok(())\n")
	b.WriteString("}\n")
	return b.String(), nil
}

func (e *Emitter) constructor(f common.Func) (string, error) {
	var b strings.Builder
	if err := constructorTmpl.Execute(&b, struct{ Native string }{Native: f.Name}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// paramDecl renders one named, typed parameter. It reports ErrSkip when the
// type table cannot resolve the argument's spelling.
func (e *Emitter) paramDecl(a common.Arg) (string, error) {
	token, err := e.types.Rust(a.Type)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", a.RustIdent(), token), nil
}

// marshalStmt returns the pre-call statement an argument needs, or "".
// String-like arguments are rebuilt as owned CStrings so the buffer lives
// across the native call; everything else passes through untouched.
func marshalStmt(a common.Arg) string {
	if !a.Type.IsStr() {
		return ""
	}
	ident := a.RustIdent()
	return fmt.Sprintf("let %s = cstr_core::CString::new(%s)?;", ident, ident)
}

func callExpr(a common.Arg) string {
	if a.Type.IsStr() {
		return a.RustIdent() + ".as_ptr()"
	}
	return a.RustIdent()
}

func indent(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("    " + line + "\n")
	}
	return b.String()
}
