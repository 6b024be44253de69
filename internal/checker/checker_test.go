package checker

import (
	"strings"
	"testing"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/dialect"
	"github.com/paul-j-lucas/cdecl-sub004/internal/operator"
	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"

	"github.com/stretchr/testify/require"
)

func TestPointerToReferenceIsIllegal(t *testing.T) {
	b := ast.NewBuilder()
	intType := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	ref := b.Reference(intType)
	ptr := b.Pointer(ref)

	c := Check(b.Arena, ptr, Options{Dialect: dialect.Cpp11})
	first, ok := c.FirstError()
	require.True(t, ok, "expected an error")
	require.Contains(t, first.Message, "pointer to reference is illegal")
}

func TestArrayOfVoidIsIllegal(t *testing.T) {
	b := ast.NewBuilder()
	void := b.Builtin(typebits.Type{Base: typebits.BaseVoid})
	arr := b.Array(void, ast.ArraySize{Kind: ast.ArraySizeInt, Int: 4})

	c := Check(b.Arena, arr, Options{Dialect: dialect.C99})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "array of void is illegal")
}

func TestMainMustReturnInt(t *testing.T) {
	b := ast.NewBuilder()
	voidRet := b.Builtin(typebits.Type{Base: typebits.BaseVoid})
	main := b.Function(scopedname.New(scopedname.Component{Name: "main"}), nil, voidRet)

	c := Check(b.Arena, main, Options{Dialect: dialect.C11})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "main() must return int")
}

func TestMainAcceptsZeroParams(t *testing.T) {
	b := ast.NewBuilder()
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	main := b.Function(scopedname.New(scopedname.Component{Name: "main"}), nil, intRet)

	c := Check(b.Arena, main, Options{Dialect: dialect.C11})
	require.False(t, c.Aborted())
}

func TestOperatorPlusNonMemberRequiresTwoParams(t *testing.T) {
	b := ast.NewBuilder()
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator+"}), operator.Plus, nil, intRet)
	b.Arena.Node(op).Flags = ast.NonMemberExplicit

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp14})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.True(t, strings.Contains(first.Message, "must have exactly 2 parameters"))
}

func TestOperatorPlusNonMemberWithTwoParamsOK(t *testing.T) {
	b := ast.NewBuilder()
	p1 := b.Param("", typebits.Type{Base: typebits.BaseClass})
	p2 := b.Param("", typebits.Type{Base: typebits.BaseInt})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator+"}), operator.Plus, []ast.Ref{p1, p2}, intRet)
	b.Arena.Node(op).Flags = ast.NonMemberExplicit

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp14})
	require.False(t, c.Aborted())
}

func TestVariableLengthArrayRequiresC99AndParamList(t *testing.T) {
	b := ast.NewBuilder()
	intType := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	arr := b.Array(intType, ast.ArraySize{Kind: ast.ArraySizeVariable})

	c := Check(b.Arena, arr, Options{Dialect: dialect.C99})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "parameter list")
}

func TestImplicitIntIllegalInC99(t *testing.T) {
	b := ast.NewBuilder()
	implicit := b.Builtin(typebits.Type{})

	c := Check(b.Arena, implicit, Options{Dialect: dialect.C99})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "implicit int")
}

func TestRegisterDeprecatedWarningInCpp11(t *testing.T) {
	b := ast.NewBuilder()
	n := b.Builtin(typebits.Type{Base: typebits.BaseInt, Store: typebits.StoreRegister})

	c := Check(b.Arena, n, Options{Dialect: dialect.Cpp11})
	require.False(t, c.Aborted())
	found := false
	for _, d := range c.Diagnostics() {
		if strings.Contains(d.Message, "register is deprecated") {
			found = true
		}
	}
	require.True(t, found, "expected a register-deprecated warning")
}

func TestSatRequiresAccumOrFract(t *testing.T) {
	b := ast.NewBuilder()
	n := b.Builtin(typebits.Type{Base: typebits.BaseInt | typebits.BaseSat})

	c := Check(b.Arena, n, Options{Dialect: dialect.C99})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "_Sat requires _Accum or _Fract")
}

func TestSatWithAccumOK(t *testing.T) {
	b := ast.NewBuilder()
	n := b.Builtin(typebits.Type{Base: typebits.BaseAccum | typebits.BaseSat})

	c := Check(b.Arena, n, Options{Dialect: dialect.C99})
	require.False(t, c.Aborted())
}

func TestKnrParamAcceptsUntypedName(t *testing.T) {
	b := ast.NewBuilder()
	p := b.Arena.New(ast.Name, 0, ast.SourceSpan{})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	fn := b.Function(scopedname.New(scopedname.Component{Name: "f"}), []ast.Ref{p}, intRet)

	c := Check(b.Arena, fn, Options{Dialect: dialect.KnrC})
	require.False(t, c.Aborted())
}

func TestNonKnrRejectsUntypedNameParam(t *testing.T) {
	b := ast.NewBuilder()
	p := b.Arena.New(ast.Name, 0, ast.SourceSpan{})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	fn := b.Function(scopedname.New(scopedname.Component{Name: "f"}), []ast.Ref{p}, intRet)

	c := Check(b.Arena, fn, Options{Dialect: dialect.C99})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "type specifier")
}

func TestKnrRejectsTypedParam(t *testing.T) {
	b := ast.NewBuilder()
	p := b.Param("x", typebits.Type{Base: typebits.BaseInt})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	fn := b.Function(scopedname.New(scopedname.Component{Name: "f"}), []ast.Ref{p}, intRet)

	c := Check(b.Arena, fn, Options{Dialect: dialect.KnrC})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "untyped identifier")
}

func TestAutoParamRequiresCpp20(t *testing.T) {
	b := ast.NewBuilder()
	p := b.Param("x", typebits.Type{Base: typebits.BaseAuto})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	fn := b.Function(scopedname.New(scopedname.Component{Name: "f"}), []ast.Ref{p}, intRet)

	c := Check(b.Arena, fn, Options{Dialect: dialect.Cpp17})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "auto parameters require C++20")
}

func TestAutoParamOKInCpp20(t *testing.T) {
	b := ast.NewBuilder()
	p := b.Param("x", typebits.Type{Base: typebits.BaseAuto})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	fn := b.Function(scopedname.New(scopedname.Component{Name: "f"}), []ast.Ref{p}, intRet)

	c := Check(b.Arena, fn, Options{Dialect: dialect.Cpp20})
	require.False(t, c.Aborted())
}

func TestNamedVoidParamIsIllegal(t *testing.T) {
	b := ast.NewBuilder()
	p := b.Param("x", typebits.Type{Base: typebits.BaseVoid})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	fn := b.Function(scopedname.New(scopedname.Component{Name: "f"}), []ast.Ref{p}, intRet)

	c := Check(b.Arena, fn, Options{Dialect: dialect.C11})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "named parameters can not be void")
}

func TestUnnamedSoleVoidParamOK(t *testing.T) {
	b := ast.NewBuilder()
	p := b.Param("", typebits.Type{Base: typebits.BaseVoid})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	fn := b.Function(scopedname.New(scopedname.Component{Name: "f"}), []ast.Ref{p}, intRet)

	c := Check(b.Arena, fn, Options{Dialect: dialect.C11})
	require.False(t, c.Aborted())
}

func TestOperatorNewDisallowsVirtualStorage(t *testing.T) {
	b := ast.NewBuilder()
	p := b.Param("", typebits.Type{Base: typebits.BaseUnsigned})
	voidPtr := b.Pointer(b.Builtin(typebits.Type{Base: typebits.BaseVoid}))
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator new"}), operator.New, []ast.Ref{p}, voidPtr)
	b.Arena.Node(op).Type.Store = typebits.StoreVirtual

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp17})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "allows only static, inline, constexpr, or noexcept")
}

func TestOperatorArrowRequiresPointerReturn(t *testing.T) {
	b := ast.NewBuilder()
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator->"}), operator.Arrow, nil, intRet)

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp17})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "operator-> must return a pointer")
}

func TestOperatorDeleteMustReturnVoid(t *testing.T) {
	b := ast.NewBuilder()
	p := b.Param("", typebits.Type{Base: typebits.BaseUnsigned})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator delete"}), operator.Delete, []ast.Ref{p}, intRet)

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp17})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "must return void")
}

func TestOperatorNewMustReturnVoidPointer(t *testing.T) {
	b := ast.NewBuilder()
	p := b.Param("", typebits.Type{Base: typebits.BaseUnsigned})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator new"}), operator.New, []ast.Ref{p}, intRet)

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp17})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "must return void*")
}

func TestNonMemberOperatorRequiresClassParam(t *testing.T) {
	b := ast.NewBuilder()
	p1 := b.Param("", typebits.Type{Base: typebits.BaseInt})
	p2 := b.Param("", typebits.Type{Base: typebits.BaseInt})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator-"}), operator.Minus, []ast.Ref{p1, p2}, intRet)
	b.Arena.Node(op).Flags = ast.NonMemberExplicit

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp17})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "must have a class, struct, union, or enum parameter")
}

func TestNonMemberOperatorWithClassParamOK(t *testing.T) {
	b := ast.NewBuilder()
	p1 := b.Param("", typebits.Type{Base: typebits.BaseClass})
	p2 := b.Param("", typebits.Type{Base: typebits.BaseInt})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator-"}), operator.Minus, []ast.Ref{p1, p2}, intRet)
	b.Arena.Node(op).Flags = ast.NonMemberExplicit

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp17})
	require.False(t, c.Aborted())
}

func TestPostfixIncrementRequiresDummyInt(t *testing.T) {
	b := ast.NewBuilder()
	badDummy := b.Param("", typebits.Type{Base: typebits.BaseFloat})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator++"}), operator.PlusPlus, []ast.Ref{badDummy}, intRet)
	b.Arena.Node(op).Flags = ast.MemberExplicit

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp17})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "requires a dummy int parameter")
}

func TestPostfixIncrementWithDummyIntOK(t *testing.T) {
	b := ast.NewBuilder()
	dummy := b.Param("", typebits.Type{Base: typebits.BaseInt})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator++"}), operator.PlusPlus, []ast.Ref{dummy}, intRet)
	b.Arena.Node(op).Flags = ast.MemberExplicit

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp17})
	require.False(t, c.Aborted())
}

func TestDefaultedNonMemberComparisonRequiresFriend(t *testing.T) {
	b := ast.NewBuilder()
	p1 := b.Param("", typebits.Type{Base: typebits.BaseClass})
	p2 := b.Param("", typebits.Type{Base: typebits.BaseClass})
	boolRet := b.Builtin(typebits.Type{Base: typebits.BaseBool})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator=="}), operator.Equal, []ast.Ref{p1, p2}, boolRet)
	b.Arena.Node(op).Flags = ast.NonMemberExplicit
	b.Arena.Node(op).Type.Store = typebits.StoreDefault

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp20})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "must be a friend")
}

func TestDefaultedMemberComparisonRequiresConst(t *testing.T) {
	b := ast.NewBuilder()
	p1 := b.Param("", typebits.Type{Base: typebits.BaseClass})
	boolRet := b.Builtin(typebits.Type{Base: typebits.BaseBool})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator=="}), operator.Equal, []ast.Ref{p1}, boolRet)
	b.Arena.Node(op).Flags = ast.MemberExplicit
	b.Arena.Node(op).Type.Store = typebits.StoreDefault

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp20})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "must be const")
}

func TestDefaultedComparisonRequiresClassParams(t *testing.T) {
	b := ast.NewBuilder()
	p1 := b.Param("", typebits.Type{Base: typebits.BaseInt})
	boolRet := b.Builtin(typebits.Type{Base: typebits.BaseBool})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator=="}), operator.Equal, []ast.Ref{p1}, boolRet)
	b.Arena.Node(op).Flags = ast.MemberExplicit
	b.Arena.Node(op).Type.Store = typebits.StoreDefault | typebits.StoreConst

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp20})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "by value or const reference")
}

func TestDefaultedComparisonMustReturnBool(t *testing.T) {
	b := ast.NewBuilder()
	p1 := b.Param("", typebits.Type{Base: typebits.BaseClass})
	intRet := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator=="}), operator.Equal, []ast.Ref{p1}, intRet)
	b.Arena.Node(op).Flags = ast.MemberExplicit
	b.Arena.Node(op).Type.Store = typebits.StoreDefault | typebits.StoreConst

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp20})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "must return bool")
}

func TestDefaultedComparisonRequiresCpp20(t *testing.T) {
	b := ast.NewBuilder()
	p1 := b.Param("", typebits.Type{Base: typebits.BaseClass})
	boolRet := b.Builtin(typebits.Type{Base: typebits.BaseBool})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator=="}), operator.Equal, []ast.Ref{p1}, boolRet)
	b.Arena.Node(op).Flags = ast.MemberExplicit
	b.Arena.Node(op).Type.Store = typebits.StoreDefault | typebits.StoreConst

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp17})
	first, ok := c.FirstError()
	require.True(t, ok)
	require.Contains(t, first.Message, "C++20")
}

func TestDefaultedComparisonMemberOK(t *testing.T) {
	b := ast.NewBuilder()
	p1 := b.Param("", typebits.Type{Base: typebits.BaseClass})
	boolRet := b.Builtin(typebits.Type{Base: typebits.BaseBool})
	op := b.Operator(scopedname.New(scopedname.Component{Name: "operator=="}), operator.Equal, []ast.Ref{p1}, boolRet)
	b.Arena.Node(op).Flags = ast.MemberExplicit
	b.Arena.Node(op).Type.Store = typebits.StoreDefault | typebits.StoreConst

	c := Check(b.Arena, op, Options{Dialect: dialect.Cpp20})
	require.False(t, c.Aborted())
}

func TestKnrMissingTypeSpecifierWarnsInC89(t *testing.T) {
	b := ast.NewBuilder()
	n := b.Builtin(typebits.Type{})

	c := Check(b.Arena, n, Options{Dialect: dialect.C89})
	require.False(t, c.Aborted())
	found := false
	for _, d := range c.Diagnostics() {
		if strings.Contains(d.Message, "K&R-ism") {
			found = true
		}
	}
	require.True(t, found, "expected a K&R-style missing type specifier warning")
}

func TestIdempotence(t *testing.T) {
	b := ast.NewBuilder()
	intType := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	ref := b.Reference(intType)

	c1 := Check(b.Arena, ref, Options{Dialect: dialect.Cpp17})
	c2 := Check(b.Arena, ref, Options{Dialect: dialect.Cpp17})
	require.Equal(t, len(c1.Diagnostics()), len(c2.Diagnostics()))
}
