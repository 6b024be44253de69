// Package gibberish implements the GibberishRenderer (§4.6): the
// reverse of english — walking an Ast back into C/C++ declaration
// syntax, right-to-left through pointers, left-to-right through
// function parameters, with east/west const placement and
// precedence-driven parenthesization.
package gibberish

import (
	"strconv"
	"strings"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/operator"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

// Options configures rendering; EastConst selects const/volatile
// placement after the pointee type rather than before (§4.6 step 1).
type Options struct {
	EastConst bool
}

// Render renders the subtree rooted at ref, with sname as the
// declarator's identifier (empty for an anonymous/abstract declarator).
func Render(a *ast.Arena, ref ast.Ref, sname string, opts Options) string {
	specifiers, declarator := split(a, ref, opts)
	decl := declarator(sname)
	switch {
	case specifiers == "":
		return decl
	case decl == "":
		return specifiers
	default:
		return specifiers + " " + decl
	}
}

// declFn builds the declarator string around name, the identifier (or
// "" for an abstract declarator) at the center of the recursion.
type declFn func(name string) string

// split separates a node into its declaration-specifier words and a
// declarator-building continuation, mirroring the classic
// "declare-to-the-right, decode-to-the-left" algorithm cdecl is named
// for.
func split(a *ast.Arena, ref ast.Ref, opts Options) (string, declFn) {
	if ref == ast.NoRef {
		return "", func(name string) string { return name }
	}
	n := a.Node(ref)

	switch n.Kind {
	case ast.Pointer:
		innerSpec, innerDecl := split(a, n.Of, opts)
		qual := qualifierSuffix(n.Type, opts)
		return innerSpec, func(name string) string {
			return innerDecl(paren(a, n.Of, "*"+qual+name))
		}
	case ast.Reference:
		innerSpec, innerDecl := split(a, n.Of, opts)
		return innerSpec, func(name string) string {
			return innerDecl(paren(a, n.Of, "&"+name))
		}
	case ast.RvalueReference:
		innerSpec, innerDecl := split(a, n.Of, opts)
		return innerSpec, func(name string) string {
			return innerDecl(paren(a, n.Of, "&&"+name))
		}
	case ast.Array:
		innerSpec, innerDecl := split(a, n.Of, opts)
		size := arraySizeSpelling(n)
		return innerSpec, func(name string) string {
			return innerDecl(name + "[" + size + "]")
		}
	case ast.Function, ast.AppleBlock, ast.Operator:
		return splitFunctionLike(a, ref, n, opts)
	default:
		return specifiers(n, opts), func(name string) string { return name }
	}
}

// paren wraps decl in parentheses when of's kind requires it for
// correct precedence against a following array or function suffix —
// e.g. "int (*x)[10]" needs parens around "*x" or it parses as
// "array of pointer", not "pointer to array" (§4.6 step 3).
func paren(a *ast.Arena, of ast.Ref, decl string) string {
	if of == ast.NoRef {
		return decl
	}
	switch a.Node(of).Kind {
	case ast.Array, ast.Function, ast.AppleBlock, ast.Operator:
		return "(" + decl + ")"
	default:
		return decl
	}
}

func qualifierSuffix(t typebits.Type, opts Options) string {
	var words []string
	if t.Store&typebits.StoreConst != 0 {
		words = append(words, "const")
	}
	if t.Store&typebits.StoreVolatile != 0 {
		words = append(words, "volatile")
	}
	if len(words) == 0 {
		return ""
	}
	return " " + strings.Join(words, " ") + " "
}

func arraySizeSpelling(n *ast.Node) string {
	switch n.ArraySize.Kind {
	case ast.ArraySizeInt:
		return strconv.FormatInt(n.ArraySize.Int, 10)
	case ast.ArraySizeNamed:
		return n.ArraySize.Named
	default:
		return ""
	}
}

func splitFunctionLike(a *ast.Arena, ref ast.Ref, n *ast.Node, opts Options) (string, declFn) {
	retSpec, retDecl := "", declFn(func(name string) string { return name })
	if n.Ret != ast.NoRef {
		retSpec, retDecl = split(a, n.Ret, opts)
	}

	var params []string
	for _, p := range n.Params {
		pn := a.Node(p)
		if pn.Kind == ast.Variadic {
			params = append(params, "...")
			continue
		}
		params = append(params, Render(a, p, pn.SName.LocalName(), opts))
	}
	paramList := "(" + strings.Join(params, ", ") + ")"

	return retSpec, func(name string) string {
		head := name
		if n.Kind == ast.Operator {
			if info, ok := operator.Lookup(n.OpID); ok {
				head = "operator" + info.Spelling
			}
		}
		decl := head + paramList
		return retDecl(decl)
	}
}

func specifiers(n *ast.Node, opts Options) string {
	return typebits.NameC(n.Type, opts.EastConst)
}
