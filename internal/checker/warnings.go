package checker

import (
	"fmt"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/dialect"
	"github.com/paul-j-lucas/cdecl-sub004/internal/diag"
	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

// keywordSince records, for identifiers this engine happens to also use
// as keywords, the oldest dialect in which each became a keyword. Only
// a representative subset is tracked; an identifier absent from this
// table is never flagged as a reserved keyword of a future dialect.
var keywordSince = map[string]dialect.Dialect{
	"bool":       dialect.C23,
	"restrict":   dialect.C99,
	"_Bool":      dialect.C99,
	"thread_local": dialect.C11,
	"auto":       dialect.Cpp11, // as type deduction; the storage-class sense is older
	"constexpr":  dialect.Cpp11,
	"final":      dialect.Cpp11,
	"override":   dialect.Cpp11,
	"noexcept":   dialect.Cpp11,
	"consteval":  dialect.Cpp20,
	"constinit":  dialect.Cpp20,
	"char8_t":    dialect.Cpp20,
}

// warningsPass implements §4.4.3. It never aborts: every rule calls
// Collector.Warn, not Error. Like the structural/type-legality passes,
// it descends into function-like parameters, since a reserved or
// future-keyword identifier can appear there too.
func warningsPass(a *ast.Arena, ref ast.Ref, opts Options, c *diag.Collector) {
	if ref == ast.NoRef {
		return
	}
	n := a.Node(ref)
	warnNode(a, n, opts, c)

	if child, ok := ast.ChildOf(n); ok {
		warningsPass(a, child, opts, c)
	}
	for _, p := range n.Params {
		warningsPass(a, p, opts, c)
	}
}

func warnNode(a *ast.Arena, n *ast.Node, opts Options, c *diag.Collector) {
	if n.Kind == ast.UserDefLiteral {
		local := n.SName.LocalName()
		if len(local) == 0 || local[0] != '_' {
			c.Warn(diag.ReservedIdent, n.Loc, fmt.Sprintf("user-defined literal suffix %q is reserved for the implementation", local), `user-defined suffixes should start with "_"`)
		}
	}

	if n.Type.Attr&typebits.AttrNodiscard != 0 && ast.IsFunctionLike(n.Kind) &&
		n.Ret != ast.NoRef && a.Node(n.Ret).Type.Base == typebits.BaseVoid {
		c.Warn(diag.DeprecatedFeature, n.Loc, "[[nodiscard]] on a void-returning function has no effect", "")
	}

	if n.Type.Store&typebits.StoreRegister != 0 && opts.Dialect >= requiredCpp11 && dialect.FamilyOf(opts.Dialect) == dialect.FamilyCpp {
		c.Warn(diag.DeprecatedFeature, n.Loc, "register is deprecated in C++11 and later", "")
	}

	if n.Type.Store&typebits.StoreThrow != 0 && dialect.FamilyOf(opts.Dialect) == dialect.FamilyCpp {
		if opts.Dialect >= requiredCpp11 && opts.Dialect < requiredCpp20 {
			c.Warn(diag.DeprecatedFeature, n.Loc, "dynamic exception specifications are deprecated in C++11 and later", "did you mean noexcept?")
		}
	}

	if n.Kind == ast.Builtin && n.Type.Base == typebits.BaseNone &&
		dialect.FamilyOf(opts.Dialect) == dialect.FamilyC &&
		opts.Dialect >= dialect.C89 && opts.Dialect < requiredC99 {
		c.Warn(diag.DeprecatedFeature, n.Loc, "missing type specifier defaults to int is a K&R-ism", "did you mean \"int\"?")
	}

	warnReservedIdentifiers(n.SName, opts, c)
	warnFutureKeyword(n.SName, opts, c)
}

func warnReservedIdentifiers(sname scopedname.Name, opts Options, c *diag.Collector) {
	cpp := dialect.FamilyOf(opts.Dialect) == dialect.FamilyCpp
	for _, comp := range sname.Components {
		if scopedname.IsReserved(comp.Name, cpp) {
			family := "C"
			if cpp {
				family = "C++"
			}
			c.Warn(diag.ReservedIdent, ast.SourceSpan{}, fmt.Sprintf("%q is a reserved identifier in %s", comp.Name, family), "")
		}
	}
}

func warnFutureKeyword(sname scopedname.Name, opts Options, c *diag.Collector) {
	for _, comp := range sname.Components {
		since, tracked := keywordSince[comp.Name]
		if !tracked {
			continue
		}
		if dialect.FamilyOf(since) != dialect.FamilyOf(opts.Dialect) {
			continue
		}
		if dialect.RankOrder(opts.Dialect, since) < 0 {
			c.Warn(diag.ReservedIdent, ast.SourceSpan{}, fmt.Sprintf("%q is a keyword since %s", comp.Name, dialect.Name(since)), "")
		}
	}
}
