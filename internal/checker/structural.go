package checker

import (
	"fmt"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/diag"
	"github.com/paul-j-lucas/cdecl-sub004/internal/dialect"
	"github.com/paul-j-lucas/cdecl-sub004/internal/operator"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

// structuralPass dispatches on AstKind (§4.4.1). inParamList is threaded
// down so Array can apply its parameter-only rules.
func structuralPass(a *ast.Arena, ref ast.Ref, opts Options, c *diag.Collector, inParamList bool) bool {
	if ref == ast.NoRef || c.Aborted() {
		return !c.Aborted()
	}
	n := a.Node(ref)

	if !checkAlignas(a, n, opts, c) {
		return false
	}

	switch n.Kind {
	case ast.Array:
		if !checkArray(a, ref, n, opts, c, inParamList) {
			return false
		}
	case ast.Builtin:
		if !checkBuiltin(n, opts, c) {
			return false
		}
	case ast.ClassStructUnion:
		if !checkClassStructUnion(a, n, c) {
			return false
		}
	case ast.Enum:
		if !checkEnum(n, opts, c) {
			return false
		}
	case ast.Constructor, ast.Destructor:
		if !checkCtorDtor(n, c) {
			return false
		}
	case ast.Function, ast.AppleBlock, ast.Operator, ast.UserDefConversion, ast.UserDefLiteral, ast.Lambda:
		if !checkFunctionLike(a, ref, n, opts, c) {
			return false
		}
	case ast.Pointer, ast.Reference, ast.RvalueReference:
		if !checkPointerOrReference(a, ref, n, c) {
			return false
		}
	}

	if child, ok := ast.ChildOf(n); ok {
		childInParamList := inParamList
		if ast.IsFunctionLike(n.Kind) {
			childInParamList = false
		}
		if !structuralPass(a, child, opts, c, childInParamList) {
			return false
		}
	}
	if ast.IsFunctionLike(n.Kind) {
		for _, p := range n.Params {
			if !structuralPass(a, p, opts, c, true) {
				return false
			}
		}
	}
	return true
}

func checkAlignas(a *ast.Arena, n *ast.Node, opts Options, c *diag.Collector) bool {
	if n.Alignas.Kind == ast.AlignasNone {
		return true
	}
	if n.Kind == ast.Typedef {
		return c.Error(diag.IllegalCombination, n.Loc, "alignas can not be applied to a typedef", "")
	}
	if isRegister(n) {
		return c.Error(diag.IllegalCombination, n.Loc, "alignas can not be combined with register", "")
	}
	if !ast.IsObjectKind(n.Kind) {
		return c.Error(diag.IllegalCombination, n.Loc, "alignas is only legal on an object", "")
	}
	if n.Alignas.Kind == ast.AlignasExpr {
		v := n.Alignas.ExprValue
		if v == 0 || (v&(v-1)) != 0 {
			return c.Error(diag.IllegalCombination, n.Loc, "alignas value must be a power of two", "")
		}
	}
	if n.Alignas.Kind == ast.AlignasType && n.Alignas.TypeRef != ast.NoRef {
		return structuralPass(a, n.Alignas.TypeRef, opts, c, false)
	}
	return true
}

func checkArray(a *ast.Arena, ref ast.Ref, n *ast.Node, opts Options, c *diag.Collector, inParamList bool) bool {
	if n.ArraySize.Kind == ast.ArraySizeVariable || n.ArrayStoreIDs != typebits.StoreNone {
		if !inParamList {
			return c.Error(diag.NotSupported, n.Loc, "variable length arrays are legal only inside a parameter list", "")
		}
		if opts.Dialect < requiredC99 {
			return c.Error(diag.NotSupported, n.Loc, "variable length arrays require C99 or later", "")
		}
	}

	of := a.Node(n.Of)
	switch {
	case of.Kind == ast.Builtin && of.Type.Base == typebits.BaseVoid:
		return c.Error(diag.IllegalRelation, n.Loc, "array of void is illegal", `did you mean "array of pointer to void"?`)
	case ast.IsFunctionLike(of.Kind):
		return c.Error(diag.IllegalRelation, n.Loc, fmt.Sprintf("array of %s is illegal", kindName(of.Kind)), fmt.Sprintf("did you mean %q?", "array of pointer to "+kindName(of.Kind)))
	case of.Kind == ast.Name:
		return c.Error(diag.IllegalRelation, n.Loc, "array of name is illegal", "")
	}
	if isRegister(of) {
		return c.Error(diag.IllegalCombination, n.Loc, "array of register-qualified type is illegal", "")
	}
	return true
}

func checkBuiltin(n *ast.Node, opts Options, c *diag.Collector) bool {
	if n.Type.Base == typebits.BaseNone && opts.Dialect >= requiredC99 {
		return c.Error(diag.IllegalCombination, n.Loc, "implicit int is illegal in C99 and later", "")
	}
	if n.Type.Store&typebits.StoreInline != 0 && ast.IsObjectKind(n.Kind) && n.Kind != ast.Typedef {
		if opts.Dialect < requiredCpp17 {
			return c.Error(diag.IllegalCombination, n.Loc, "inline variable requires C++17 or later", "")
		}
	}
	if n.Type.Store&typebits.StoreTypedef != 0 && n.BitWidth != 0 {
		return c.Error(diag.IllegalCombination, n.Loc, "typedef storage forbids a bit-field width", "")
	}
	if countNameLen(n) > 0 && n.BitWidth != 0 {
		return c.Error(diag.IllegalCombination, n.Loc, "a scoped name forbids a bit-field width", "")
	}
	if n.Type.Base == typebits.BaseVoid && n.Type.Store == typebits.StoreNone && !ast.IsFunctionLike(n.Kind) && countNameLen(n) > 0 {
		return c.Error(diag.IllegalCombination, n.Loc, "a plain void variable is illegal", `did you mean "pointer to void"?`)
	}
	if n.Type.Store&typebits.StoreStrict != 0 || n.Type.Store&typebits.StoreRelaxed != 0 {
		if n.Type.Store&typebits.StoreShared == 0 {
			return c.Error(diag.IllegalCombination, n.Loc, "relaxed/strict requires shared", "")
		}
	}
	if n.Type.Base&typebits.BaseSat != 0 && n.Type.Base&(typebits.BaseAccum|typebits.BaseFract) == 0 {
		return c.Error(diag.IllegalCombination, n.Loc, "_Sat requires _Accum or _Fract", "")
	}
	return true
}

func countNameLen(n *ast.Node) int { return countName(n.SName) }

// checkClassStructUnion implements the CSU half of §4.4.1's combined
// "Class/Struct/Union/Enum" rule: gibberish like "enum class Foo" sets
// both BaseEnum and a class/struct/union bit on the same node. That
// combination is only legal when the node is being typedef-ed — the
// elaborated form "enum class Foo" used to declare a variable, rather
// than to introduce a typedef name, is rejected.
func checkClassStructUnion(a *ast.Arena, n *ast.Node, c *diag.Collector) bool {
	if n.Of != ast.NoRef {
		return c.Error(diag.IllegalCombination, n.Loc, "an underlying type is legal only on an enum", "")
	}
	if n.Type.Base&typebits.BaseEnum != 0 && n.Type.Base&(typebits.BaseClass|typebits.BaseStruct|typebits.BaseUnion) != 0 {
		if n.Parent == ast.NoRef || a.Node(n.Parent).Kind != ast.Typedef {
			return c.Error(diag.IllegalCombination, n.Loc, "enum combined with class/struct/union is legal only when typedef-ing", "")
		}
	}
	return true
}

func checkEnum(n *ast.Node, opts Options, c *diag.Collector) bool {
	if n.Of == ast.NoRef {
		return true
	}
	if opts.Dialect < requiredCpp11 {
		return c.Error(diag.IllegalCombination, n.Loc, "enum underlying type requires C++11 or later", "")
	}
	return true
}

func checkCtorDtor(n *ast.Node, c *diag.Collector) bool {
	if countNameLen(n) >= 2 {
		comps := n.SName.Components
		last, prev := comps[len(comps)-1], comps[len(comps)-2]
		if last.Name != prev.Name {
			return c.Error(diag.IllegalRelation, n.Loc, "constructor/destructor name must match its enclosing class", "")
		}
	}
	return true
}

func checkFunctionLike(a *ast.Arena, ref ast.Ref, n *ast.Node, opts Options, c *diag.Collector) bool {
	if n.Ret != ast.NoRef {
		ret := a.Node(n.Ret)
		if ret.Kind == ast.Array {
			return c.Error(diag.BadReturn, n.Loc, "function returning array", `did you mean "pointer to array"?`)
		}
		if ast.IsFunctionLike(ret.Kind) {
			return c.Error(diag.BadReturn, n.Loc, "function returning function", `did you mean "pointer to function"?`)
		}
		if ret.Kind == ast.Operator {
			return c.Error(diag.BadReturn, n.Loc, "function returning operator is illegal", "")
		}
		if ret.Kind == ast.UserDefLiteral {
			return c.Error(diag.BadReturn, n.Loc, "function returning user-defined literal is illegal", "")
		}
	}
	if n.Type.Store&typebits.StoreExplicit != 0 && n.Kind != ast.UserDefConversion {
		return c.Error(diag.IllegalCombination, n.Loc, "explicit is legal only on a user-defined conversion", "")
	}
	if n.Type.Store&typebits.StoreRefQualifier != 0 || n.Type.Store&typebits.StoreRvalueRefQual != 0 {
		if opts.Dialect < requiredCpp11 {
			return c.Error(diag.NotSupported, n.Loc, "reference-qualified function requires C++11 or later", "")
		}
		if n.Type.Store&(typebits.StoreExtern|typebits.StoreStatic) != 0 {
			return c.Error(diag.IllegalCombination, n.Loc, "reference-qualified function can not be extern or static", "")
		}
	}
	if n.Flags == ast.NonMemberExplicit && n.Type.Store&(typebits.StoreVirtual|typebits.StoreOverride|typebits.StoreFinal|typebits.StoreMutable) != 0 {
		return c.Error(diag.IllegalCombination, n.Loc, "function can not be both member and non-member", "")
	}
	if n.Flags == ast.MemberExplicit && n.Type.Store&typebits.StoreFriend != 0 {
		return c.Error(diag.IllegalCombination, n.Loc, "function can not be both member and non-member", "")
	}
	if n.Type.Attr&typebits.AttrNoUniqueAddress != 0 {
		return c.Error(diag.IllegalCombination, n.Loc, "[[no_unique_address]] can not appear on a function", "")
	}
	if n.Type.Store&typebits.StorePure != 0 && n.Type.Store&typebits.StoreVirtual == 0 {
		return c.Error(diag.IllegalCombination, n.Loc, "pure specifier requires virtual", "")
	}
	if n.Type.Store&typebits.StoreThrow != 0 && opts.Dialect >= requiredCpp20 {
		return c.Error(diag.NotSupported, n.Loc, "dynamic exception specifications are not supported in C++20 and later", "did you mean noexcept?")
	}

	if n.Kind == ast.Operator {
		if !checkOperator(a, n, opts, c) {
			return false
		}
	}
	if n.Kind == ast.UserDefConversion {
		if !checkUserDefConversion(a, n, c) {
			return false
		}
	}
	if n.Kind == ast.UserDefLiteral {
		if !checkUserDefLiteral(a, n, c) {
			return false
		}
	}
	if countNameLen(n) > 0 && n.SName.LocalName() == "main" && countName(n.SName) == 1 {
		if !checkMain(a, n, opts, c) {
			return false
		}
	}
	return checkParams(a, n, opts, c)
}

// tsNewDeleteOper is the storage-bit subset §4.4.1 permits on
// new/new[]/delete/delete[]: they may be static (implicitly, at class
// scope), inline, constexpr (C++20 allocation), or noexcept, but never
// virtual, explicit, mutable, or any of the other qualifiers that only
// make sense on an ordinary member function.
const tsNewDeleteOper = typebits.StoreStatic | typebits.StoreInline | typebits.StoreConstexpr | typebits.StoreNoexcept

// comparisonOperators is the set of operators eligible for the C++20
// "= default" comparison-operator rules (§4.4.1).
var comparisonOperators = map[operator.ID]bool{
	operator.Equal: true, operator.NotEqual: true,
	operator.Less: true, operator.Greater: true,
	operator.LessEqual: true, operator.GreaterEqual: true,
	operator.Spaceship: true,
}

func checkOperator(a *ast.Arena, n *ast.Node, opts Options, c *diag.Collector) bool {
	info, ok := operator.Lookup(n.OpID)
	if !ok {
		return c.Error(diag.BadOperator, n.Loc, "unknown operator", "")
	}
	form, ok := operForm(n)
	if !ok {
		return c.Error(diag.BadOperator, n.Loc, fmt.Sprintf("non-member operator %s must have exactly %d parameters", info.Spelling, info.ParamsMax), "")
	}
	// ++ and -- are the sole operators where the member/non-member form
	// each admit two legal parameter counts: prefix, and postfix with its
	// extra dummy int (checked below).
	isIncrDecr := n.OpID == operator.PlusPlus || n.OpID == operator.MinusMinus
	switch form {
	case operator.FormMemberOnly:
		if info.Form == operator.FormMemberOnly && info.ParamsMax != info.ParamsMin {
			if len(n.Params) < info.ParamsMin || (info.ParamsMax >= 0 && len(n.Params) > info.ParamsMax) {
				return c.Error(diag.BadOperator, n.Loc, fmt.Sprintf("member operator %s has a wrong number of parameters", info.Spelling), "")
			}
			break
		}
		if len(n.Params) != info.ParamsMin && !(isIncrDecr && len(n.Params) == info.ParamsMin+1) {
			return c.Error(diag.BadOperator, n.Loc, fmt.Sprintf("member operator %s must have exactly %d parameters", info.Spelling, info.ParamsMin), "")
		}
	case operator.FormNonMemberOnly:
		if info.ParamsMax >= 0 && len(n.Params) != info.ParamsMax && !(isIncrDecr && len(n.Params) == info.ParamsMax-1) {
			return c.Error(diag.BadOperator, n.Loc, fmt.Sprintf("non-member operator %s must have exactly %d parameters", info.Spelling, info.ParamsMax), "")
		}
	}
	if form == operator.FormMemberOnly && n.Type.Store&typebits.StoreFriend != 0 {
		return c.Error(diag.IllegalCombination, n.Loc, "friend is illegal on a member operator", "")
	}

	if operator.IsNewOrDelete(n.OpID) {
		if n.Type.Store & ^typebits.Store(tsNewDeleteOper) != 0 {
			return c.Error(diag.IllegalCombination, n.Loc, fmt.Sprintf("operator %s allows only static, inline, constexpr, or noexcept storage", info.Spelling), "")
		}
	} else if form == operator.FormNonMemberOnly && len(n.Params) > 0 {
		hasClassParam := false
		for _, pref := range n.Params {
			if isClassOrEnumRelated(a, pref) {
				hasClassParam = true
				break
			}
		}
		if !hasClassParam {
			return c.Error(diag.IllegalCombination, n.Loc, fmt.Sprintf("non-member operator %s must have a class, struct, union, or enum parameter", info.Spelling), "")
		}
	}

	switch n.OpID {
	case operator.Arrow:
		if !isPointerToClassLike(a, n.Ret) {
			return c.Error(diag.BadOperator, n.Loc, "operator-> must return a pointer to class/struct/union", "")
		}
	case operator.Delete, operator.DeleteArray:
		if n.Ret == ast.NoRef || a.Node(n.Ret).Type.Base != typebits.BaseVoid {
			return c.Error(diag.BadOperator, n.Loc, fmt.Sprintf("operator %s must return void", info.Spelling), "")
		}
	case operator.New, operator.NewArray:
		if !isVoidPointer(a, n.Ret) {
			return c.Error(diag.BadOperator, n.Loc, fmt.Sprintf("operator %s must return void*", info.Spelling), "")
		}
	case operator.PlusPlus, operator.MinusMinus:
		isPostfix := (form == operator.FormMemberOnly && len(n.Params) > info.ParamsMin) ||
			(form == operator.FormNonMemberOnly && len(n.Params) == info.ParamsMax)
		if isPostfix {
			last := a.Node(n.Params[len(n.Params)-1])
			if last.Kind != ast.Builtin || last.Type.Base != typebits.BaseInt {
				return c.Error(diag.BadOperator, n.Loc, fmt.Sprintf("postfix operator %s requires a dummy int parameter", info.Spelling), "")
			}
		}
	}

	if n.Type.Store&typebits.StoreDefault != 0 && comparisonOperators[n.OpID] {
		if !checkDefaultedComparison(a, n, info, form, opts, c) {
			return false
		}
	}
	return true
}

// isClassOrEnumRelated reports whether ref is, or is a reference to, a
// class/struct/union/enum — the non-member-operand requirement of
// §4.4.1's Operator rules.
func isClassOrEnumRelated(a *ast.Arena, ref ast.Ref) bool {
	n := a.Node(ref)
	if n.Kind == ast.Reference || n.Kind == ast.RvalueReference {
		n = a.Node(n.Of)
	}
	return n.Kind == ast.ClassStructUnion || n.Kind == ast.Enum ||
		n.Type.Base&(typebits.BaseClass|typebits.BaseStruct|typebits.BaseUnion|typebits.BaseEnum) != 0
}

func isPointerToClassLike(a *ast.Arena, ref ast.Ref) bool {
	if ref == ast.NoRef {
		return false
	}
	n := a.Node(ref)
	if n.Kind != ast.Pointer {
		return false
	}
	of := a.Node(n.Of)
	return of.Kind == ast.ClassStructUnion || of.Type.Base&(typebits.BaseClass|typebits.BaseStruct|typebits.BaseUnion) != 0
}

func isVoidPointer(a *ast.Arena, ref ast.Ref) bool {
	if ref == ast.NoRef {
		return false
	}
	n := a.Node(ref)
	if n.Kind != ast.Pointer {
		return false
	}
	of := a.Node(n.Of)
	return of.Kind == ast.Builtin && of.Type.Base == typebits.BaseVoid
}

// checkDefaultedComparison implements the C++20 "= default" rules for
// comparison operators (§4.4.1): non-member forms must be friend,
// member forms must be const, both parameters must be the same class
// by value or const reference, and the return type must be bool except
// for operator<=>, which must be auto or a standard ordering type
// (simplified here to "auto or bool", since the ordering-type catalogue
// itself is outside this engine's scope).
func checkDefaultedComparison(a *ast.Arena, n *ast.Node, info operator.Info, form operator.Form, opts Options, c *diag.Collector) bool {
	if opts.Dialect < requiredCpp20 {
		return c.Error(diag.NotSupported, n.Loc, "defaulted comparison operators require C++20 or later", "")
	}
	switch form {
	case operator.FormNonMemberOnly:
		if n.Type.Store&typebits.StoreFriend == 0 {
			return c.Error(diag.IllegalCombination, n.Loc, "a defaulted non-member comparison operator must be a friend", "")
		}
	case operator.FormMemberOnly:
		if n.Type.Store&typebits.StoreConst == 0 {
			return c.Error(diag.IllegalCombination, n.Loc, "a defaulted member comparison operator must be const", "")
		}
	}
	for _, pref := range n.Params {
		p := a.Node(pref)
		byValue := p.Kind == ast.Builtin && p.Type.Base&(typebits.BaseClass|typebits.BaseStruct|typebits.BaseUnion) != 0
		byConstRef := p.Kind == ast.Reference && a.Node(p.Of).Type.Store&typebits.StoreConst != 0 &&
			a.Node(p.Of).Type.Base&(typebits.BaseClass|typebits.BaseStruct|typebits.BaseUnion) != 0
		if !byValue && !byConstRef {
			return c.Error(diag.BadOperator, n.Loc, "a defaulted comparison operator's parameters must be the class by value or const reference", "")
		}
	}
	if n.OpID == operator.Spaceship {
		if n.Ret != ast.NoRef {
			ret := a.Node(n.Ret)
			if ret.Type.Base&typebits.BaseAuto == 0 && ret.Type.Base&typebits.BaseBool == 0 {
				return c.Error(diag.BadOperator, n.Loc, "operator<=> must return auto or a standard ordering type", "")
			}
		}
	} else if n.Ret == ast.NoRef || a.Node(n.Ret).Type.Base&typebits.BaseBool == 0 {
		return c.Error(diag.BadOperator, n.Loc, fmt.Sprintf("defaulted operator %s must return bool", info.Spelling), "")
	}
	return true
}

func checkUserDefConversion(a *ast.Arena, n *ast.Node, c *diag.Collector) bool {
	if n.Type.Store&typebits.StoreFriend != 0 && countNameLen(n) == 0 {
		return c.Error(diag.IllegalCombination, n.Loc, "friend user-defined conversion requires a qualified name", "")
	}
	if n.Ret != ast.NoRef && a.Node(n.Ret).Kind == ast.Array {
		return c.Error(diag.BadReturn, n.Loc, "user-defined conversion to array is illegal", `did you mean "pointer to array"?`)
	}
	return true
}

func checkUserDefLiteral(a *ast.Arena, n *ast.Node, c *diag.Collector) bool {
	switch len(n.Params) {
	case 1:
		p := a.Node(n.Params[0])
		base := p.Type.Base
		ok := base&(typebits.BaseUnsigned|typebits.BaseLongLong) != 0 ||
			(base&typebits.BaseLong != 0 && base&typebits.BaseDouble != 0) ||
			base&(typebits.BaseChar|typebits.BaseWChar|typebits.BaseChar8|typebits.BaseChar16|typebits.BaseChar32) != 0 ||
			p.Kind == ast.Pointer
		if !ok {
			return c.Error(diag.BadParam, n.Loc, "user-defined literal parameter has an unsupported type", "")
		}
	case 2:
		first := a.Node(n.Params[0])
		if first.Kind != ast.Pointer {
			return c.Error(diag.BadParam, n.Loc, "user-defined literal's first parameter must be a pointer to const char", "")
		}
	default:
		return c.Error(diag.BadParam, n.Loc, "user-defined literal must have one or two parameters", "")
	}
	return true
}

func checkMain(a *ast.Arena, n *ast.Node, opts Options, c *diag.Collector) bool {
	if n.Ret == ast.NoRef || a.Node(n.Ret).Type.Base&typebits.BaseInt == 0 {
		return c.Error(diag.BadMain, n.Loc, "main() must return int", "")
	}
	switch len(n.Params) {
	case 0:
	case 1:
		if opts.Dialect == requiredKnrC {
			return c.Error(diag.BadMain, n.Loc, "main() with one parameter is illegal in K&R C", "")
		}
		p := a.Node(n.Params[0])
		if p.Type.Base != typebits.BaseVoid {
			return c.Error(diag.BadMain, n.Loc, "main()'s single parameter must be void", "")
		}
	case 2, 3:
		for i := 1; i < len(n.Params); i++ {
			if !isCharStarStarOrCharStarArray(a, n.Params[i]) {
				return c.Error(diag.BadMain, n.Loc, "main()'s argv parameter must be char*[] or char**", "")
			}
		}
	default:
		return c.Error(diag.BadMain, n.Loc, "main() accepts 0, 1, 2, or 3 parameters", "")
	}
	return true
}

func isCharStarStarOrCharStarArray(a *ast.Arena, ref ast.Ref) bool {
	n := a.Node(ref)
	switch n.Kind {
	case ast.Pointer:
		inner := a.Node(n.Of)
		return inner.Kind == ast.Pointer && a.Node(inner.Of).Type.Base&typebits.BaseChar != 0
	case ast.Array:
		inner := a.Node(n.Of)
		return inner.Kind == ast.Pointer && a.Node(inner.Of).Type.Base&typebits.BaseChar != 0
	}
	return false
}

func checkParams(a *ast.Arena, n *ast.Node, opts Options, c *diag.Collector) bool {
	for i, pref := range n.Params {
		p := a.Node(pref)
		if countNameLen(p) > 0 && len(p.SName.Components) > 1 {
			return c.Error(diag.BadParam, p.Loc, "scoped parameter names are forbidden", "")
		}
		if p.Type.Store & ^typebits.StoreRegister != 0 && n.Kind != ast.Lambda {
			return c.Error(diag.BadParam, p.Loc, "parameters allow only register storage", "")
		}
		if p.Type.Base == typebits.BaseVoid && p.Kind == ast.Builtin {
			if len(n.Params) != 1 || !p.SName.IsEmpty() {
				return c.Error(diag.BadParam, p.Loc, "named parameters can not be void", "")
			}
		}
		if p.Kind == ast.Name {
			if opts.Dialect != dialect.KnrC {
				return c.Error(diag.BadParam, p.Loc, "parameter requires a type specifier", "")
			}
		} else if opts.Dialect == dialect.KnrC && p.Kind != ast.Variadic {
			return c.Error(diag.BadParam, p.Loc, "K&R parameter must be an untyped identifier", "")
		}
		if p.Type.Base&typebits.BaseAuto != 0 {
			if dialect.FamilyOf(opts.Dialect) != dialect.FamilyCpp || opts.Dialect < requiredCpp20 {
				return c.Error(diag.NotSupported, p.Loc, "auto parameters require C++20 or later", "")
			}
		}
		if p.Kind == ast.Variadic {
			if i != len(n.Params)-1 {
				return c.Error(diag.BadParam, p.Loc, "\"...\" must be the last parameter", "")
			}
			if len(n.Params) == 1 {
				return c.Error(diag.BadParam, p.Loc, "\"...\" can not be the sole parameter", "")
			}
			if n.Kind == ast.Operator && n.OpID != operator.Call {
				return c.Error(diag.BadParam, p.Loc, "\"...\" is disallowed on this operator", "")
			}
		}
		if p.BitWidth != 0 {
			return c.Error(diag.BadParam, p.Loc, "bit-field widths are forbidden in parameters", "")
		}
	}
	return true
}

func checkPointerOrReference(a *ast.Arena, ref ast.Ref, n *ast.Node, c *diag.Collector) bool {
	of := a.Node(n.Of)
	if n.Kind == ast.Pointer && of.Kind == ast.Reference {
		return c.Error(diag.IllegalRelation, n.Loc, "pointer to reference is illegal", `did you mean "*&"?`)
	}
	if isRegister(of) {
		return c.Error(diag.IllegalCombination, n.Loc, fmt.Sprintf("%s to register is illegal", kindName(n.Kind)), "")
	}
	if (n.Kind == ast.Reference || n.Kind == ast.RvalueReference) && of.Kind == ast.Builtin && of.Type.Base == typebits.BaseVoid {
		return c.Error(diag.IllegalRelation, n.Loc, "reference to void is illegal", `did you mean "pointer to void"?`)
	}
	if (n.Kind == ast.Reference || n.Kind == ast.RvalueReference) && of.Type.Store&(typebits.StoreConst|typebits.StoreVolatile) != 0 {
		if of.Kind == ast.Reference || of.Kind == ast.RvalueReference {
			return c.Error(diag.IllegalCombination, n.Loc, "cv-qualified reference is illegal", `did you mean "reference to const X"?`)
		}
	}
	return true
}
