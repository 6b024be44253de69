// Package english implements the EnglishRenderer (§4.5): a pre-order
// walk producing pseudo-English prose for declarations, casts, and
// typedef definitions.
package english

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/operator"
	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

// Render renders the subtree rooted at ref as English prose.
func Render(a *ast.Arena, ref ast.Ref) string {
	var b strings.Builder
	renderNode(&b, a, ref)
	return b.String()
}

func renderNode(b *strings.Builder, a *ast.Arena, ref ast.Ref) {
	if ref == ast.NoRef {
		return
	}
	n := a.Node(ref)

	nonBase := nonBaseWords(n.Type)
	if nonBase != "" {
		b.WriteString(nonBase)
		b.WriteString(" ")
	}

	switch n.Kind {
	case ast.Array:
		renderArray(b, a, ref, n)
	case ast.Pointer:
		b.WriteString("pointer to ")
		renderNode(b, a, n.Of)
	case ast.Reference:
		b.WriteString("reference to ")
		renderNode(b, a, n.Of)
	case ast.RvalueReference:
		b.WriteString("rvalue reference to ")
		renderNode(b, a, n.Of)
	case ast.PointerToMember:
		b.WriteString("pointer to member of ")
		b.WriteString(classKindWord(n))
		b.WriteString(" ")
		b.WriteString(n.ClassSName.String())
		b.WriteString(" ")
		renderNode(b, a, n.Of)
	case ast.Function, ast.AppleBlock, ast.Operator, ast.Constructor, ast.Destructor,
		ast.UserDefLiteral, ast.Lambda:
		renderFunctionLike(b, a, ref, n)
	case ast.UserDefConversion:
		renderUserDefConversion(b, a, n)
	case ast.Typedef:
		renderTypedef(b, a, n)
	case ast.Cast:
		renderCast(b, a, n)
	case ast.Builtin, ast.ClassStructUnion, ast.Enum:
		b.WriteString(typebits.NameEnglishBase(n.Type))
		if sname := scopedNameSuffix(n.SName); sname != "" {
			b.WriteString(" ")
			b.WriteString(sname)
		}
	case ast.Name, ast.Variadic:
		b.WriteString(n.SName.LocalName())
	}
}

// nonBaseWords renders a node's attributes + storage + qualifiers
// (everything but the base bits), as §4.5 requires before each kind's
// phrase.
func nonBaseWords(t typebits.Type) string {
	onlyNonBase := typebits.Type{Store: t.Store, Attr: t.Attr}
	return strings.TrimSpace(typebits.NameEnglish(onlyNonBase))
}

func classKindWord(n *ast.Node) string {
	switch {
	case n.Type.Base&typebits.BaseClass != 0:
		return "class"
	case n.Type.Base&typebits.BaseUnion != 0:
		return "union"
	default:
		return "struct"
	}
}

func renderArray(b *strings.Builder, a *ast.Arena, ref ast.Ref, n *ast.Node) {
	if n.ArraySize.Kind == ast.ArraySizeVariable {
		b.WriteString("variable length ")
	}
	b.WriteString("array ")
	if storeWords := strings.TrimSpace(typebits.NameEnglish(typebits.Type{Store: n.ArrayStoreIDs})); storeWords != "" {
		b.WriteString(storeWords)
		b.WriteString(" ")
	}
	switch n.ArraySize.Kind {
	case ast.ArraySizeInt:
		b.WriteString(strconv.FormatInt(n.ArraySize.Int, 10))
		b.WriteString(" ")
	case ast.ArraySizeNamed:
		b.WriteString(n.ArraySize.Named)
		b.WriteString(" ")
	}
	b.WriteString("of ")
	renderNode(b, a, n.Of)
}

func renderFunctionLike(b *strings.Builder, a *ast.Arena, ref ast.Ref, n *ast.Node) {
	switch n.Flags {
	case ast.MemberExplicit:
		b.WriteString("member ")
	case ast.NonMemberExplicit:
		b.WriteString("non-member ")
	}
	b.WriteString(kindWord(n))
	b.WriteString(" (")
	for i, p := range n.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		renderParam(b, a, p)
	}
	b.WriteString(")")
	if n.Ret != ast.NoRef {
		b.WriteString(" returning ")
		renderNode(b, a, n.Ret)
	}
}

func renderParam(b *strings.Builder, a *ast.Arena, ref ast.Ref) {
	n := a.Node(ref)
	if !n.SName.IsEmpty() {
		b.WriteString(n.SName.LocalName())
		b.WriteString(" as ")
		if n.Kind == ast.Builtin {
			// The name is already written; renderNode would repeat it.
			if nonBase := nonBaseWords(n.Type); nonBase != "" {
				b.WriteString(nonBase)
				b.WriteString(" ")
			}
			b.WriteString(typebits.NameEnglishBase(n.Type))
			return
		}
	}
	renderNode(b, a, ref)
}

func kindWord(n *ast.Node) string {
	switch n.Kind {
	case ast.Function, ast.AppleBlock:
		return "function"
	case ast.Operator:
		info, ok := operator.Lookup(n.OpID)
		if ok {
			return fmt.Sprintf("operator %s", info.Spelling)
		}
		return "operator"
	case ast.Constructor:
		return "constructor"
	case ast.Destructor:
		return "destructor"
	case ast.UserDefLiteral:
		return "user-defined literal"
	case ast.Lambda:
		return "lambda"
	default:
		return "function"
	}
}

func renderUserDefConversion(b *strings.Builder, a *ast.Arena, n *ast.Node) {
	b.WriteString("user-defined conversion operator")
	if !n.SName.IsEmpty() {
		b.WriteString(" of ")
		b.WriteString(n.SName.String())
	}
	if n.Ret != ast.NoRef {
		b.WriteString(" returning ")
		renderNode(b, a, n.Ret)
	}
}

func renderTypedef(b *strings.Builder, a *ast.Arena, n *ast.Node) {
	of := a.Node(n.Of)
	if of.Kind != ast.Builtin || of.Type.Base&typebits.BaseTypedef == 0 {
		renderNode(b, a, n.Of)
		b.WriteString(" ")
	}
	b.WriteString(n.SName.String())
}

func renderCast(b *strings.Builder, a *ast.Arena, n *ast.Node) {
	b.WriteString(castKindWord(n.CastKind))
	b.WriteString(" cast ")
	if !n.SName.IsEmpty() {
		b.WriteString(n.SName.String())
		b.WriteString(" ")
	}
	b.WriteString("into ")
	renderNode(b, a, n.Of)
}

func castKindWord(k ast.CastKind) string {
	switch k {
	case ast.CastConst:
		return "const"
	case ast.CastDynamic:
		return "dynamic"
	case ast.CastReinterpret:
		return "reinterpret"
	case ast.CastStatic:
		return "static"
	default:
		return "C-style"
	}
}

// scopedNameSuffix renders a ScopedName for §4.5's "Scoped-name
// rendering emits the local name, then ' of <type> <next>' for each
// outer scope" — simplified here to local name plus the joined scope
// chain, since the type of each enclosing scope is not separately
// tracked on ScopedName.Component.
func scopedNameSuffix(n scopedname.Name) string {
	if n.IsEmpty() {
		return ""
	}
	return n.String()
}
