// Package typedefstore implements the TypedefStore (§4.7): a mapping
// from ScopedName to a canonical Ast, enforcing that a later
// redeclaration of a nested scope uses a scope-kind consistent with the
// earlier one (§3.3, §8 "ScopedName ordering").
//
// Structurally this mirrors the teacher's thread-safe registry
// (internal/registry/registry.go): a mutex-guarded map plus a
// insertion-order index for deterministic iteration, rather than a bare
// map whose range order Go deliberately randomizes.
package typedefstore

import (
	"fmt"
	"sync"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
)

// entry pairs a stored name with the arena-owned Ast it resolves to.
type entry struct {
	name scopedname.Name
	ref  ast.Ref
}

// Store owns an independent arena (§5: "The TypedefStore owns its own
// independent arena; ASTs inside it are immutable once inserted") and a
// name index built on top of it.
type Store struct {
	mu      sync.RWMutex
	arena   *ast.Arena
	byName  map[string]int // String() -> index into order
	order   []entry        // insertion order, walked by Show
}

// New creates an empty TypedefStore with its own arena.
func New() *Store {
	return &Store{
		arena:  ast.NewArena(),
		byName: make(map[string]int),
	}
}

// Arena returns the store's independent arena, so callers can Dup a
// parse-arena subtree into it before calling Insert.
func (s *Store) Arena() *ast.Arena { return s.arena }

// Insert adds sname -> ref, failing if sname conflicts with an existing
// entry's scope-kind nesting per §3.3's ordering (Namespace < Class ≈
// Struct ≈ Union < Enum): a scope component may not be recorded at a
// position whose existing component of the same name has a different
// restrictiveness, whether lower or higher.
func (s *Store) Insert(sname scopedname.Name, ref ast.Ref) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sname.String()
	if idx, exists := s.byName[key]; exists {
		existing := s.order[idx].name
		if !existing.Equal(sname) {
			return fmt.Errorf("%q already declared with a different scope kind", key)
		}
		s.order[idx] = entry{name: sname, ref: ref}
		return nil
	}

	if err := checkNestingAgainstPrefixes(sname, s.order); err != nil {
		return err
	}

	s.order = append(s.order, entry{name: sname, ref: ref})
	s.byName[key] = len(s.order) - 1
	return nil
}

// checkNestingAgainstPrefixes verifies that sname does not redeclare a
// scope already recorded by a previously inserted name under a
// scope-kind of different restrictiveness (§3.3: Namespace < Class ≈
// Struct ≈ Union < Enum).
func checkNestingAgainstPrefixes(sname scopedname.Name, order []entry) error {
	comps := sname.Components
	for _, e := range order {
		other := e.name.Components
		n := len(comps)
		if len(other) < n {
			n = len(other)
		}
		for i := 0; i < n-1; i++ {
			if comps[i].Name != other[i].Name {
				break
			}
			if scopedname.Restrictiveness(comps[i].Kind) != scopedname.Restrictiveness(other[i].Kind) {
				return fmt.Errorf("%q: scope kind conflicts with existing declaration of %q", sname, e.name)
			}
		}
	}
	return nil
}

// Lookup returns the Ast registered for the full name sname.
func (s *Store) Lookup(sname scopedname.Name) (ast.Ref, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byName[sname.String()]
	if !ok {
		return ast.NoRef, false
	}
	return s.order[idx].ref, true
}

// LookupPrefix returns the entry whose name is the longest registered
// prefix of sname, or false if none match.
func (s *Store) LookupPrefix(sname scopedname.Name) (scopedname.Name, ast.Ref, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		best    scopedname.Name
		bestRef ast.Ref
		bestLen = -1
		found   bool
	)
	for _, e := range s.order {
		n := len(e.name.Components)
		if n > len(sname.Components) {
			continue
		}
		if !isPrefix(e.name.Components, sname.Components) {
			continue
		}
		if n > bestLen {
			best, bestRef, bestLen, found = e.name, e.ref, n, true
		}
	}
	return best, bestRef, found
}

func isPrefix(prefix, full []scopedname.Component) bool {
	for i, c := range prefix {
		if full[i].Name != c.Name {
			return false
		}
	}
	return true
}

// Entry pairs a name with its Ast, returned by All in insertion
// order.
type Entry struct {
	Name scopedname.Name
	Ref  ast.Ref
}

// All returns every entry in insertion order (§4.7: "show ... walks
// entries in insertion order").
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.order))
	for i, e := range s.order {
		out[i] = Entry{Name: e.name, Ref: e.ref}
	}
	return out
}
