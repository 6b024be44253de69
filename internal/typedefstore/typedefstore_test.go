package typedefstore

import (
	"testing"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

func newIntRef(s *Store) ast.Ref {
	r := s.Arena().New(ast.Builtin, 0, ast.SourceSpan{})
	s.Arena().Node(r).Type = typebits.Type{Base: typebits.BaseInt}
	return r
}

func TestInsertAndLookup(t *testing.T) {
	s := New()
	pi := scopedname.New(scopedname.Component{Name: "PI", Kind: scopedname.None})
	ref := newIntRef(s)

	if err := s.Insert(pi, ref); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	got, ok := s.Lookup(pi)
	if !ok || got != ref {
		t.Errorf("Lookup = %v, %v, want %v, true", got, ok, ref)
	}
}

func TestInsertRejectsConflictingScopeKind(t *testing.T) {
	s := New()
	outer := scopedname.New(
		scopedname.Component{Name: "NS", Kind: scopedname.Namespace},
		scopedname.Component{Name: "X", Kind: scopedname.None},
	)
	if err := s.Insert(outer, newIntRef(s)); err != nil {
		t.Fatalf("Insert outer: %v", err)
	}

	conflicting := scopedname.New(
		scopedname.Component{Name: "NS", Kind: scopedname.Enum},
		scopedname.Component{Name: "Y", Kind: scopedname.None},
	)
	if err := s.Insert(conflicting, newIntRef(s)); err == nil {
		t.Errorf("Insert should reject NS redeclared as Enum after Namespace")
	}
}

func TestInsertAllowsClassStructUnionInterchange(t *testing.T) {
	s := New()
	asStruct := scopedname.New(
		scopedname.Component{Name: "Foo", Kind: scopedname.Struct},
		scopedname.Component{Name: "x", Kind: scopedname.None},
	)
	asUnion := scopedname.New(
		scopedname.Component{Name: "Foo", Kind: scopedname.Union},
		scopedname.Component{Name: "y", Kind: scopedname.None},
	)
	if err := s.Insert(asStruct, newIntRef(s)); err != nil {
		t.Fatalf("Insert asStruct: %v", err)
	}
	if err := s.Insert(asUnion, newIntRef(s)); err != nil {
		t.Errorf("Struct and Union share restrictiveness, should not conflict: %v", err)
	}
}

func TestLookupPrefixPicksLongest(t *testing.T) {
	s := New()
	ns := scopedname.New(scopedname.Component{Name: "NS", Kind: scopedname.Namespace})
	nested := scopedname.New(
		scopedname.Component{Name: "NS", Kind: scopedname.Namespace},
		scopedname.Component{Name: "Inner", Kind: scopedname.Class},
	)
	nsRef := newIntRef(s)
	nestedRef := newIntRef(s)
	if err := s.Insert(ns, nsRef); err != nil {
		t.Fatalf("Insert ns: %v", err)
	}
	if err := s.Insert(nested, nestedRef); err != nil {
		t.Fatalf("Insert nested: %v", err)
	}

	query := scopedname.New(
		scopedname.Component{Name: "NS", Kind: scopedname.Namespace},
		scopedname.Component{Name: "Inner", Kind: scopedname.Class},
		scopedname.Component{Name: "field", Kind: scopedname.None},
	)
	name, ref, ok := s.LookupPrefix(query)
	if !ok || ref != nestedRef || !name.Equal(nested) {
		t.Errorf("LookupPrefix = %v, %v, %v, want %v, %v, true", name, ref, ok, nested, nestedRef)
	}
}

func TestAllWalksInsertionOrder(t *testing.T) {
	s := New()
	names := []string{"A", "B", "C"}
	for _, n := range names {
		if err := s.Insert(scopedname.New(scopedname.Component{Name: n}), newIntRef(s)); err != nil {
			t.Fatalf("Insert %s: %v", n, err)
		}
	}
	all := s.All()
	if len(all) != len(names) {
		t.Fatalf("All() len = %d, want %d", len(all), len(names))
	}
	for i, n := range names {
		if all[i].Name.LocalName() != n {
			t.Errorf("All()[%d] = %q, want %q", i, all[i].Name.LocalName(), n)
		}
	}
}
