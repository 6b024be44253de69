package ast

// Dup deep-copies the subtree rooted at ref from src into dst, returning
// the new root's Ref. Per the open question in §9 ("whether duplicating
// a subtree preserves unique_id or re-numbers"), this implementation
// always re-numbers: src and dst may be the same arena or different
// ones, and two independent trees must never share index space, so a
// fresh Ref is allocated for every node in the copy (recorded in
// DESIGN.md).
func Dup(src *Arena, ref Ref, dst *Arena) Ref {
	if ref == NoRef {
		return NoRef
	}
	old := src.Node(ref)
	cp := *old // shallow copy of scalar fields; slices re-copied below

	cp.Params = nil
	cp.Captures = append([]LambdaCapture(nil), old.Captures...)

	dst.nodes = append(dst.nodes, cp)
	newRef := Ref(len(dst.nodes) - 1)

	dst.Node(newRef).Parent = NoRef // fixed up by the caller via SetParent, if needed

	// Each recursive Dup appends to dst.nodes and may move it, so the new
	// node is looked up again after every call rather than held by pointer.
	if cp.Of != NoRef {
		of := Dup(src, cp.Of, dst)
		dst.Node(newRef).Of = of
		dst.Node(of).Parent = newRef
	}
	if cp.Ret != NoRef {
		ret := Dup(src, cp.Ret, dst)
		dst.Node(newRef).Ret = ret
		dst.Node(ret).Parent = newRef
	}
	if len(old.Params) > 0 {
		params := make([]Ref, len(old.Params))
		for i, p := range old.Params {
			params[i] = Dup(src, p, dst)
			dst.Node(params[i]).Parent = newRef
		}
		dst.Node(newRef).Params = params
	}
	if cp.Alignas.Kind == AlignasType && cp.Alignas.TypeRef != NoRef {
		alignRef := Dup(src, cp.Alignas.TypeRef, dst)
		dst.Node(newRef).Alignas.TypeRef = alignRef
	}
	return newRef
}

// Equal compares the subtrees rooted at x (in arena a) and y (in arena
// b) structurally, ignoring scoped names (§4.3, §8 "AST duplication").
func Equal(a *Arena, x Ref, b *Arena, y Ref) bool {
	if x == NoRef || y == NoRef {
		return x == y
	}
	nx, ny := a.Node(x), b.Node(y)

	if nx.Kind != ny.Kind || nx.Type != ny.Type || nx.Alignas.Kind != ny.Alignas.Kind {
		return false
	}
	switch nx.Kind {
	case Array:
		if nx.ArraySize != ny.ArraySize || nx.ArrayStoreIDs != ny.ArrayStoreIDs {
			return false
		}
	case Operator:
		if nx.OpID != ny.OpID {
			return false
		}
	case PointerToMember:
		// class_sname participates in structural shape even though
		// scoped names are otherwise ignored, because the pointed-to
		// class identity is not merely cosmetic.
		if !nx.ClassSName.Equal(ny.ClassSName) {
			return false
		}
	case Cast:
		if nx.CastKind != ny.CastKind {
			return false
		}
	}

	if !equalRef(a, nx.Of, b, ny.Of) {
		return false
	}
	if !equalRef(a, nx.Ret, b, ny.Ret) {
		return false
	}
	if len(nx.Params) != len(ny.Params) {
		return false
	}
	for i := range nx.Params {
		if !equalRef(a, nx.Params[i], b, ny.Params[i]) {
			return false
		}
	}
	return true
}

func equalRef(a *Arena, x Ref, b *Arena, y Ref) bool {
	if x == NoRef || y == NoRef {
		return x == y
	}
	return Equal(a, x, b, y)
}
