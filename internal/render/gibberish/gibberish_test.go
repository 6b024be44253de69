package gibberish

import (
	"testing"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

func TestPointerToArrayOfInt(t *testing.T) {
	b := ast.NewBuilder()
	intType := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	arr := b.Array(intType, ast.ArraySize{Kind: ast.ArraySizeInt, Int: 10})
	ptr := b.Pointer(arr)

	got := Render(b.Arena, ptr, "p", Options{})
	want := "int (*p)[10]"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPlainInt(t *testing.T) {
	b := ast.NewBuilder()
	intType := b.Builtin(typebits.Type{Base: typebits.BaseInt})

	got := Render(b.Arena, intType, "x", Options{})
	want := "int x"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPointerToConstInt(t *testing.T) {
	b := ast.NewBuilder()
	intType := b.Builtin(typebits.Type{Base: typebits.BaseInt, Store: typebits.StoreConst})
	ptr := b.Pointer(intType)

	got := Render(b.Arena, ptr, "p", Options{})
	want := "const int *p"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestFunctionWithPointerToPointerParam(t *testing.T) {
	b := ast.NewBuilder()
	charType := b.Builtin(typebits.Type{Base: typebits.BaseChar})
	innerPtr := b.Pointer(charType)
	outerPtr := b.Pointer(innerPtr)
	intParam := b.Param("", typebits.Type{Base: typebits.BaseInt})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	fn := b.Function(scopedname.New(scopedname.Component{Name: "f"}), []ast.Ref{intParam, outerPtr}, intRet)

	got := Render(b.Arena, fn, "f", Options{})
	want := "int f(int, char **)"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
