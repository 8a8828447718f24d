package common

import "strings"

// ObjectType is the C handle type shared by every widget. A function whose
// first parameter mentions it is treated as a method of some widget.
const ObjectType = "lv_obj_t"

// Type wraps one C type spelling exactly as the parser presents it, e.g.
// "const char *". The spelling is never parsed structurally; all
// classification is done with string tests against it.
type Type struct {
	Spelling string
}

func (t Type) IsConst() bool {
	return strings.HasPrefix(t.Spelling, "const ")
}

func (t Type) IsStr() bool {
	return strings.HasSuffix(t.Spelling, "char *")
}

// Arg is a named function parameter.
type Arg struct {
	Name string
	Type Type
}

// RustIdent returns the argument name as a Rust identifier. Names colliding
// with a Rust keyword are escaped with the r# raw-identifier prefix rather
// than renamed.
func (a Arg) RustIdent() string {
	if rustKeywords[a.Name] {
		return "r#" + a.Name
	}
	return a.Name
}

// Func is one loaded C function declaration: name, parameters in declaration
// order, and the return type ("void" is represented as nil).
type Func struct {
	Name string
	Args []Arg
	Ret  *Type
}

// IsMethod reports whether the first argument is object-typed. This is a
// substring test on the spelling, so pointer and const variants qualify.
func (f Func) IsMethod() bool {
	if len(f.Args) == 0 {
		return false
	}
	return strings.Contains(f.Args[0].Type.Spelling, ObjectType)
}

// LocalName strips the "<prefix><widget>_" template from the function name,
// e.g. "lv_arc_create" under widget "arc" becomes "create".
func (f Func) LocalName(prefix, widget string) string {
	return strings.ReplaceAll(f.Name, prefix+widget+"_", "")
}

// Widget is a named group of functions sharing a common name prefix. Methods
// accumulate during extraction and are read-only afterwards.
type Widget struct {
	Name    string
	Methods []Func
}

// Rust strict and reserved keywords (2018 edition).
var rustKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true, "abstract": true, "become": true,
	"box": true, "do": true, "final": true, "macro": true, "override": true,
	"priv": true, "try": true, "typeof": true, "unsized": true, "virtual": true,
	"yield": true,
}
