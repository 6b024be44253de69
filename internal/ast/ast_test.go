package ast

import (
	"testing"

	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

func TestBuilderPointerToArray(t *testing.T) {
	b := NewBuilder()
	intType := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	arr := b.Array(intType, ArraySize{Kind: ArraySizeInt, Int: 10})
	ptr := b.Pointer(arr)

	if b.Arena.Node(ptr).Kind != Pointer {
		t.Fatalf("expected Pointer kind")
	}
	child, ok := ChildOf(b.Arena.Node(ptr))
	if !ok || child != arr {
		t.Errorf("ChildOf(ptr) = %v, %v, want %v, true", child, ok, arr)
	}
	if b.Arena.Node(arr).Parent != ptr {
		t.Errorf("arr.Parent = %v, want %v", b.Arena.Node(arr).Parent, ptr)
	}
}

func TestSetParentOrphans(t *testing.T) {
	b := NewBuilder()
	intType := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	charType := b.Builtin(typebits.Type{Base: typebits.BaseChar})
	ptr := b.Arena.New(Pointer, 0, SourceSpan{})

	SetParent(b.Arena, intType, ptr)
	if IsOrphan(b.Arena, intType) {
		t.Errorf("intType should not be an orphan right after SetParent")
	}

	SetParent(b.Arena, charType, ptr)
	if !IsOrphan(b.Arena, intType) {
		t.Errorf("intType should become an orphan once ptr's slot points elsewhere")
	}
	if IsOrphan(b.Arena, charType) {
		t.Errorf("charType should not be an orphan")
	}
}

func TestDupReNumbersAndPreservesShape(t *testing.T) {
	src := NewBuilder()
	intType := src.Builtin(typebits.Type{Base: typebits.BaseInt})
	ptr := src.Pointer(intType)

	dst := NewArena()
	newRoot := Dup(src.Arena, ptr, dst)

	if newRoot == ptr {
		t.Errorf("Dup should re-number: got same Ref %v", newRoot)
	}
	if !Equal(src.Arena, ptr, dst, newRoot) {
		t.Errorf("Equal(original, dup) should hold")
	}
	child, ok := ChildOf(dst.Node(newRoot))
	if !ok {
		t.Fatalf("expected dup'd root to have a child")
	}
	if dst.Node(child).Parent != newRoot {
		t.Errorf("dup'd child's parent should point at the dup'd root")
	}
}

func TestEqualIgnoresScopedNames(t *testing.T) {
	b := NewBuilder()
	intA := b.Named(b.Builtin(typebits.Type{Base: typebits.BaseInt}), "a")
	intB := b.Named(b.Builtin(typebits.Type{Base: typebits.BaseInt}), "b")

	if !Equal(b.Arena, intA, b.Arena, intB) {
		t.Errorf("Equal should ignore differing scoped names")
	}
}

func TestVisitDoesNotDescendIntoParams(t *testing.T) {
	b := NewBuilder()
	param := b.Param("x", typebits.Type{Base: typebits.BaseInt})
	ret := b.Builtin(typebits.Type{Base: typebits.BaseVoid})
	fn := b.Function(scopedname.New(scopedname.Component{Name: "f"}), []Ref{param}, ret)

	var visited []Ref
	Visit(b.Arena, fn, DirectionDown, func(ref Ref, n *Node) bool {
		visited = append(visited, ref)
		return false
	})

	for _, v := range visited {
		if v == param {
			t.Errorf("Visit must not descend into function parameters, but visited %v", param)
		}
	}
	if len(visited) != 2 { // fn, then its return type
		t.Errorf("expected 2 visited nodes (fn, ret), got %d", len(visited))
	}
}

func TestVisitUpFollowsParent(t *testing.T) {
	b := NewBuilder()
	intType := b.Builtin(typebits.Type{Base: typebits.BaseInt})
	ptr := b.Pointer(intType)

	found, ok := Visit(b.Arena, intType, DirectionUp, func(ref Ref, n *Node) bool {
		return n.Kind == Pointer
	})
	if !ok || found != ptr {
		t.Errorf("Visit(up) = %v, %v, want %v, true", found, ok, ptr)
	}
}
