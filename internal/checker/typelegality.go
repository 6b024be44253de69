package checker

import (
	"fmt"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/dialect"
	"github.com/paul-j-lucas/cdecl-sub004/internal/diag"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

// typeLegalityPass runs typebits.Check on every node (§4.4.2), plus the
// cross-kind checks that don't fit the per-bit legality table.
func typeLegalityPass(a *ast.Arena, ref ast.Ref, opts Options, c *diag.Collector, isParam bool) bool {
	if ref == ast.NoRef || c.Aborted() {
		return !c.Aborted()
	}
	n := a.Node(ref)

	legal := typebits.Check(n.Type)
	if legal.IsEmpty() {
		if !c.Error(diag.IllegalCombination, n.Loc, fmt.Sprintf("%q is illegal for %s", typebits.NameC(n.Type, opts.EastConst), kindName(n.Kind)), "") {
			return false
		}
	} else if !legal.Contains(opts.Dialect) {
		phrase := dialect.WhichPhrase(legal)
		if !c.Error(diag.NotSupported, n.Loc, fmt.Sprintf("%s is not supported%s", kindName(n.Kind), phrase), "") {
			return false
		}
	}

	if !crossKindChecks(a, n, opts, c, isParam) {
		return false
	}

	if child, ok := ast.ChildOf(n); ok {
		if !typeLegalityPass(a, child, opts, c, false) {
			return false
		}
	}
	if ast.IsFunctionLike(n.Kind) {
		for _, p := range n.Params {
			if !typeLegalityPass(a, p, opts, c, true) {
				return false
			}
		}
	}
	return true
}

func crossKindChecks(a *ast.Arena, n *ast.Node, opts Options, c *diag.Collector, isParam bool) bool {
	if n.Type.Store&typebits.StoreConstexpr != 0 && ast.IsFunctionLike(n.Kind) {
		if n.Ret != ast.NoRef && a.Node(n.Ret).Type.Base == typebits.BaseVoid && opts.Dialect < requiredCpp14 {
			return c.Error(diag.IllegalCombination, n.Loc, "constexpr function returning void requires C++14 or later", "")
		}
	}
	if n.Type.Attr&typebits.AttrCarriesDependency != 0 {
		if !ast.IsFunctionLike(n.Kind) && !isParam {
			return c.Error(diag.IllegalCombination, n.Loc, "[[carries_dependency]] is legal only on functions and their parameters", "")
		}
	}
	if n.Type.Attr&typebits.AttrNoreturn != 0 && !ast.IsFunctionLike(n.Kind) {
		return c.Error(diag.IllegalCombination, n.Loc, "[[noreturn]] is legal only on functions", "")
	}
	if n.Type.Store&typebits.StoreRestrict != 0 {
		switch n.Kind {
		case ast.Function, ast.Operator, ast.Reference, ast.RvalueReference, ast.UserDefConversion, ast.Pointer:
		default:
			return c.Error(diag.IllegalCombination, n.Loc, "restrict is legal only on function, operator, reference, rvalue reference, user-defined conversion, and pointer kinds", "")
		}
	}
	return true
}
