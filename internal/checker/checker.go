// Package checker implements the two structural/type-legality visitor
// passes plus the warning pass (§4.4), grounded on the teacher's
// pipeline staging in internal/core/pipeline.go: distinct ordered
// passes over one tree, each able to short-circuit the ones after it.
package checker

import (
	"fmt"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/dialect"
	"github.com/paul-j-lucas/cdecl-sub004/internal/diag"
	"github.com/paul-j-lucas/cdecl-sub004/internal/operator"
	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

// Options carries the injected dialect/option context the design notes
// (§9) call for instead of hidden globals: callers build one per check
// so tests can exercise independent dialects concurrently.
type Options struct {
	Dialect      dialect.Dialect
	EastConst    bool
	ExplicitInt  bool
	ExplicitECSU bool
}

// Check runs the structural pass, the type-legality pass, and the
// warning pass over the subtree rooted at root, in that order. The
// first error from either of the first two passes aborts the
// operation (§7); the warning pass always runs to completion and never
// aborts.
func Check(a *ast.Arena, root ast.Ref, opts Options) *diag.Collector {
	c := diag.NewCollector()

	structuralPass(a, root, opts, c, false)
	if c.Aborted() {
		return c
	}
	typeLegalityPass(a, root, opts, c, false)
	if c.Aborted() {
		return c
	}
	warningsPass(a, root, opts, c)
	return c
}

func isRegister(n *ast.Node) bool { return n.Type.Store&typebits.StoreRegister != 0 }

func countName(sname scopedname.Name) int { return len(sname.Components) }

// operForm infers the member/non-member form of an Operator node,
// honouring any explicit user intent recorded in Flags before falling
// back to operator.InferForm (§4.4.1).
func operForm(n *ast.Node) (operator.Form, bool) {
	switch n.Flags {
	case ast.MemberExplicit:
		return operator.FormMemberOnly, true
	case ast.NonMemberExplicit:
		return operator.FormNonMemberOnly, true
	}
	info, ok := operator.Lookup(n.OpID)
	if !ok {
		return 0, false
	}
	if info.Form != operator.FormBoth {
		return info.Form, true
	}
	return operator.InferForm(n.OpID, len(n.Params))
}

func kindName(k ast.Kind) string {
	switch k {
	case ast.Array:
		return "array"
	case ast.Pointer:
		return "pointer"
	case ast.Reference:
		return "reference"
	case ast.RvalueReference:
		return "rvalue reference"
	case ast.PointerToMember:
		return "pointer to member"
	case ast.Function:
		return "function"
	case ast.Operator:
		return "operator"
	case ast.Constructor:
		return "constructor"
	case ast.Destructor:
		return "destructor"
	case ast.UserDefConversion:
		return "user-defined conversion operator"
	case ast.UserDefLiteral:
		return "user-defined literal"
	case ast.ClassStructUnion:
		return "class/struct/union"
	case ast.Enum:
		return "enum"
	case ast.Lambda:
		return "lambda"
	case ast.Cast:
		return "cast"
	case ast.Builtin:
		return "builtin"
	case ast.Name:
		return "name"
	case ast.Variadic:
		return "..."
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}
