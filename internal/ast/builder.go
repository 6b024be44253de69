package ast

import (
	"github.com/paul-j-lucas/cdecl-sub004/internal/operator"
	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

// Builder assembles AST subtrees programmatically in a single arena.
// This stands in for the grammar-driven parser, which §1 places out of
// scope: callers that already have a parser wire its output into this
// arena directly; callers that don't (the demonstration CLI, tests) use
// Builder to construct the handful of shapes they need by hand.
type Builder struct {
	Arena *Arena
}

// NewBuilder creates a Builder over a fresh arena.
func NewBuilder() *Builder {
	return &Builder{Arena: NewArena()}
}

// Builtin creates a Builtin node of the given type.
func (b *Builder) Builtin(t typebits.Type) Ref {
	r := b.Arena.New(Builtin, 0, SourceSpan{})
	b.Arena.Node(r).Type = t
	return r
}

// Pointer wraps to as "pointer to to".
func (b *Builder) Pointer(to Ref) Ref {
	r := b.Arena.New(Pointer, b.Arena.Node(to).Depth, SourceSpan{})
	SetParent(b.Arena, to, r)
	return r
}

// Reference wraps to as "reference to to".
func (b *Builder) Reference(to Ref) Ref {
	r := b.Arena.New(Reference, b.Arena.Node(to).Depth, SourceSpan{})
	SetParent(b.Arena, to, r)
	return r
}

// RvalueReference wraps to as "rvalue reference to to".
func (b *Builder) RvalueReference(to Ref) Ref {
	r := b.Arena.New(RvalueReference, b.Arena.Node(to).Depth, SourceSpan{})
	SetParent(b.Arena, to, r)
	return r
}

// Array wraps of as "array [size] of of".
func (b *Builder) Array(of Ref, size ArraySize) Ref {
	r := b.Arena.New(Array, b.Arena.Node(of).Depth, SourceSpan{})
	node := b.Arena.Node(r)
	node.ArraySize = size
	SetParent(b.Arena, of, r)
	return r
}

// Function creates a function-like node returning ret and accepting
// params, named name.
func (b *Builder) Function(name scopedname.Name, params []Ref, ret Ref) Ref {
	r := b.Arena.New(Function, 0, SourceSpan{})
	node := b.Arena.Node(r)
	node.SName = name
	node.Params = params
	for _, p := range params {
		b.Arena.Node(p).Parent = r
	}
	if ret != NoRef {
		SetParent(b.Arena, ret, r)
	}
	return r
}

// Operator creates an Operator node analogous to Function but tagged
// with an operator.ID.
func (b *Builder) Operator(name scopedname.Name, id operator.ID, params []Ref, ret Ref) Ref {
	r := b.Function(name, params, ret)
	node := b.Arena.Node(r)
	node.Kind = Operator
	node.OpID = id
	return r
}

// Param creates a (possibly named) function parameter of type t.
func (b *Builder) Param(name string, t typebits.Type) Ref {
	r := b.Arena.New(Builtin, 0, SourceSpan{})
	node := b.Arena.Node(r)
	node.Type = t
	if name != "" {
		node.SName = scopedname.New(scopedname.Component{Name: name, Kind: scopedname.None})
	}
	return r
}

// Named sets ref's scoped name to a single unqualified identifier and
// returns ref, for chaining.
func (b *Builder) Named(ref Ref, name string) Ref {
	b.Arena.Node(ref).SName = scopedname.New(scopedname.Component{Name: name, Kind: scopedname.None})
	return ref
}

// TypedefRef creates a Typedef referrer node pointing at forAst without
// owning it (§3.4).
func (b *Builder) TypedefRef(name scopedname.Name, forAst Ref) Ref {
	r := b.Arena.New(Typedef, 0, SourceSpan{})
	node := b.Arena.Node(r)
	node.SName = name
	node.Of = forAst
	return r
}
