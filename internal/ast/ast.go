// Package ast implements AstNode (§3.4): the tagged-union declaration
// node, kept in a per-parse arena.
//
// Per the original specification's design notes (§9), this is expressed
// as a Go sum type (one flat Node struct, a Kind discriminator, and a
// ChildOf helper that switches once) rather than the source's
// shared-header-offset trick, and the arena is a vector-backed slice
// indexed by Ref (a uint32), mirroring the teacher's own preference for
// flat, JSON-friendly result structs (core.Result, core.PipelineResult
// in internal/core/types.go) over pointer-heavy object graphs.
package ast

import (
	"github.com/paul-j-lucas/cdecl-sub004/internal/operator"
	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

// Kind is the tag of the declaration-node sum type (§3.4).
type Kind uint8

const (
	Placeholder Kind = iota
	Name
	Variadic
	Builtin
	Typedef
	Array
	Pointer
	Reference
	RvalueReference
	PointerToMember
	Function
	AppleBlock
	Operator
	Constructor
	Destructor
	UserDefConversion
	UserDefLiteral
	ClassStructUnion
	Enum
	Lambda
	Capture
	Cast
)

// Ref indexes a Node within an Arena. The zero value, NoRef, means "no
// node".
type Ref uint32

// NoRef is the sentinel Ref meaning "absent".
const NoRef Ref = 0

// SourceSpan is a (first_column, last_column) pair threaded explicitly
// from the parser (§6.1, §9: "no global current location").
type SourceSpan struct {
	FirstColumn int
	LastColumn  int
}

// AlignasKind discriminates the three forms alignas can take (§3.4).
type AlignasKind uint8

const (
	AlignasNone AlignasKind = iota
	AlignasExpr
	AlignasType
)

// Alignas represents an object's alignas(...) clause.
type Alignas struct {
	Kind      AlignasKind
	ExprValue uint32 // power-of-two byte count, when Kind == AlignasExpr
	TypeRef   Ref    // the aligning type's node, when Kind == AlignasType
}

// ArraySizeKind discriminates the four forms of array extent (§3.4).
type ArraySizeKind uint8

const (
	ArraySizeNone ArraySizeKind = iota
	ArraySizeVariable
	ArraySizeNamed
	ArraySizeInt
)

// ArraySize represents an Array node's size specifier.
type ArraySize struct {
	Kind  ArraySizeKind
	Named string
	Int   int64
}

// CaptureKind discriminates a lambda capture's form (§3.4).
type CaptureKind uint8

const (
	CaptureCopy CaptureKind = iota
	CaptureReference
	CaptureThis
	CaptureStarThis
	CaptureVariable
)

// CastKind discriminates the five cast forms (§3.4).
type CastKind uint8

const (
	CastC CastKind = iota
	CastConst
	CastDynamic
	CastReinterpret
	CastStatic
)

// MemberFlags records whether the user explicitly specified member or
// non-member form for a function-like node (§4.4.1's "oper_overload").
type MemberFlags uint8

const (
	MemberUnspecified MemberFlags = 0
	MemberExplicit    MemberFlags = 1 << iota
	NonMemberExplicit
)

// Node is the flat representation of every AstKind variant (§3.4). Only
// the fields relevant to Kind are meaningful; ChildOf reads the owned
// child of any kind, so callers never need a type switch of their own
// for it.
type Node struct {
	Kind Kind

	SName   scopedname.Name
	Depth   uint32
	Type    typebits.Type
	Alignas Alignas
	Loc     SourceSpan
	Parent  Ref

	// Of is the single owned child for referrer/unary-wrapper kinds:
	// Typedef.for_ast, Array.of_ast, Pointer/Reference/RvalueReference/
	// PointerToMember.to_ast, Cast.to_ast, Enum's optional fixed
	// underlying type.
	Of Ref

	// Ret is the return type for function-like kinds (absent for
	// Constructor/Destructor, which have none). UserDefConversion's
	// to_ast (its conversion target type) is carried here rather than
	// in Of, since UserDefConversion is function-like and SetParent
	// routes every function-like kind's owned child through Ret.
	Ret Ref

	// Params holds parameter node refs for function-like kinds.
	Params []Ref

	Flags MemberFlags
	OpID  operator.ID

	ClassSName scopedname.Name // PointerToMember's class_sname

	ArraySize ArraySize
	ArrayStoreIDs typebits.Store // qualifier-in-size bits

	BitWidth    uint32 // Builtin/Typedef bit-field width
	BitIntWidth uint32 // Builtin._BitInt(N) width

	Captures []LambdaCapture

	CastKind CastKind
}

// LambdaCapture is one lambda capture entry.
type LambdaCapture struct {
	Kind  CaptureKind
	SName scopedname.Name
}

// Arena owns a per-parse set of nodes (§3.4, §5). Nodes are appended and
// never individually freed; the whole arena is discarded at once when a
// parse fails or a declaration has been fully rendered.
type Arena struct {
	nodes []Node
}

// NewArena creates an empty arena. Index 0 is reserved for NoRef, so the
// first real node gets Ref(1).
func NewArena() *Arena {
	return &Arena{nodes: make([]Node, 1)}
}

// New allocates a new node of the given kind and pushes it onto the
// arena (§4.3's new_node).
func (a *Arena) New(kind Kind, depth uint32, loc SourceSpan) Ref {
	a.nodes = append(a.nodes, Node{Kind: kind, Depth: depth, Loc: loc})
	return Ref(len(a.nodes) - 1)
}

// Node returns a pointer to the node at ref, mutable in place. It panics
// if ref is NoRef or out of range, since every caller is expected to
// have validated the ref against this same arena first.
func (a *Arena) Node(ref Ref) *Node {
	return &a.nodes[ref]
}

// Len reports how many real (non-sentinel) nodes the arena holds.
func (a *Arena) Len() int { return len(a.nodes) - 1 }

// SetParent is the sole API that creates the two-way parent/child link
// (§3.4, §4.3). It overwrites both the child's Parent field and the
// parent's single owned-child slot (Of for referrer/wrapper kinds, Ret
// for function-like kinds). A previous occupant of that slot is left
// with a stale Parent pointer — an orphan, a first-class intermediate
// state rather than an error (§9, §8 "Orphan stability").
func SetParent(a *Arena, child, parent Ref) {
	childNode := a.Node(child)
	childNode.Parent = parent

	parentNode := a.Node(parent)
	if IsFunctionLike(parentNode.Kind) {
		parentNode.Ret = child
		return
	}
	parentNode.Of = child
}

// IsOrphan reports whether ref's recorded parent no longer considers it
// the occupant of its owned-child slot (§8 "Orphan stability"). A node
// with no parent at all is not an orphan.
func IsOrphan(a *Arena, ref Ref) bool {
	n := a.Node(ref)
	if n.Parent == NoRef {
		return false
	}
	owner, ok := ChildOf(a.Node(n.Parent))
	return !ok || owner != ref
}

// ChildOf returns the owned-child ref for n's kind and true, or
// (NoRef, false) if n's kind owns no single child in a fixed logical
// position. This is the "generic parent view" the design notes (§9)
// call for: one switch, used everywhere instead of ad hoc type
// assertions.
func ChildOf(n *Node) (Ref, bool) {
	switch n.Kind {
	case Typedef, Array, Pointer, Reference, RvalueReference, PointerToMember, Cast, Enum:
		return n.Of, n.Of != NoRef
	case Function, AppleBlock, Operator, UserDefConversion, UserDefLiteral, Lambda:
		return n.Ret, n.Ret != NoRef
	default:
		return NoRef, false
	}
}

// IsParentKind reports whether kind owns a child at a fixed logical
// position and participates in SetParent (§3.4's "Parent kinds").
func IsParentKind(kind Kind) bool {
	switch kind {
	case Name, Variadic, Builtin, ClassStructUnion, Typedef:
		return false
	default:
		return true
	}
}

// IsReferrerKind reports whether kind points to another tree without
// owning it (§3.4's "Referrer kinds": only Typedef).
func IsReferrerKind(kind Kind) bool { return kind == Typedef }

// IsFunctionLike reports whether kind accepts parameters (§3.4).
func IsFunctionLike(kind Kind) bool {
	switch kind {
	case AppleBlock, Constructor, Destructor, Function, Operator, Lambda,
		UserDefConversion, UserDefLiteral:
		return true
	default:
		return false
	}
}

// IsObjectKind reports whether kind can be aligned or be a variable
// (§3.4: "all non-function-like kinds except Name, Variadic,
// Placeholder, Cast").
func IsObjectKind(kind Kind) bool {
	if IsFunctionLike(kind) {
		return false
	}
	switch kind {
	case Name, Variadic, Placeholder, Cast:
		return false
	default:
		return true
	}
}
