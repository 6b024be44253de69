package ast

// Direction controls which way Visit descends relative to a node's own
// position; both are pre-order over the declarator chain.
type Direction uint8

const (
	DirectionDown Direction = iota // root to leaf (the common case)
	DirectionUp                    // leaf to root, following Parent
)

// VisitFunc is called once per visited node. Returning true stops the
// traversal and makes that node the result.
type VisitFunc func(ref Ref, n *Node) bool

// Visit performs a pre-order traversal starting at root, without
// descending into function-like parameters — they are distinct subtrees
// (§4.3). It returns the first Ref for which fn returns true, or
// (NoRef, false) if fn never does.
func Visit(a *Arena, root Ref, dir Direction, fn VisitFunc) (Ref, bool) {
	if dir == DirectionUp {
		for ref := root; ref != NoRef; ref = a.Node(ref).Parent {
			if fn(ref, a.Node(ref)) {
				return ref, true
			}
		}
		return NoRef, false
	}
	return visitDown(a, root, fn)
}

func visitDown(a *Arena, ref Ref, fn VisitFunc) (Ref, bool) {
	if ref == NoRef {
		return NoRef, false
	}
	n := a.Node(ref)
	if fn(ref, n) {
		return ref, true
	}
	if child, ok := ChildOf(n); ok {
		if found, ok := visitDown(a, child, fn); ok {
			return found, true
		}
	}
	return NoRef, false
}

// VisitParams calls fn for each of root's parameters in order, when
// root's kind is function-like. It does not recurse into each
// parameter's own subtree beyond what fn itself chooses to do by
// calling Visit again.
func VisitParams(a *Arena, root Ref, fn func(index int, param Ref) bool) {
	n := a.Node(root)
	for i, p := range n.Params {
		if fn(i, p) {
			return
		}
	}
}
