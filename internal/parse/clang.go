package parse

import (
	"fmt"

	"github.com/go-clang/clang-v13/clang"
)

// ClangParser parses translation units with libclang. Cursors do not outlive
// the translation unit, so every declaration is copied out before disposal.
type ClangParser struct{}

func (ClangParser) Parse(path string, args []string) ([]Decl, error) {
	idx := clang.NewIndex(0, 0)
	defer idx.Dispose()

	tu := idx.ParseTranslationUnit(path, args, nil, 0)
	if tu == (clang.TranslationUnit{}) {
		return nil, fmt.Errorf("libclang failed to parse %s", path)
	}
	defer tu.Dispose()

	var decls []Decl
	tu.TranslationUnitCursor().Visit(func(cursor, parent clang.Cursor) clang.ChildVisitResult {
		decls = append(decls, snapshot(cursor))
		return clang.ChildVisit_Continue
	})
	return decls, nil
}

func snapshot(cursor clang.Cursor) clangDecl {
	d := clangDecl{
		function: cursor.Kind() == clang.Cursor_FunctionDecl,
		name:     cursor.Spelling(),
		internal: cursor.Linkage() == clang.Linkage_Internal,
	}
	if !d.function {
		return d
	}

	d.result = cursor.ResultType().Spelling()
	numArgs := int(cursor.NumArguments())
	for i := 0; i < numArgs; i++ {
		arg := cursor.Argument(uint32(i))
		d.params = append(d.params, clangParam{
			name: arg.Spelling(),
			typ:  arg.Type().Spelling(),
		})
	}
	return d
}

type clangDecl struct {
	function bool
	name     string
	internal bool
	result   string
	params   []Param
}

func (d clangDecl) Function() bool  { return d.function }
func (d clangDecl) Name() string    { return d.name }
func (d clangDecl) Internal() bool  { return d.internal }
func (d clangDecl) Result() string  { return d.result }
func (d clangDecl) Params() []Param { return d.params }

type clangParam struct {
	name string
	typ  string
}

func (p clangParam) Name() string { return p.name }
func (p clangParam) Type() string { return p.typ }
