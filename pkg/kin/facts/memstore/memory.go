// Package memstore provides the canonical in-memory facts.Store.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/famlogic/kin/pkg/kin/facts"
)

// Store is an in-memory implementation of facts.Store.
//
// Writers are serialized against readers with an RWMutex so a query never
// observes a partially applied assertion. Concurrent reads are safe.
type Store struct {
	mu       sync.RWMutex
	male     map[facts.Person]struct{}
	female   map[facts.Person]struct{}
	parents  map[facts.Person]map[facts.Person]struct{} // child → parents
	children map[facts.Person]map[facts.Person]struct{} // parent → children
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		male:     make(map[facts.Person]struct{}),
		female:   make(map[facts.Person]struct{}),
		parents:  make(map[facts.Person]map[facts.Person]struct{}),
		children: make(map[facts.Person]map[facts.Person]struct{}),
	}
}

// Close implements facts.Store.
func (s *Store) Close() error { return nil }

// AddMale asserts that p is male. Idempotent; never rejects a person
// already asserted female.
func (s *Store) AddMale(ctx context.Context, p facts.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.male[p] = struct{}{}
	return nil
}

// AddFemale asserts that p is female.
func (s *Store) AddFemale(ctx context.Context, p facts.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.female[p] = struct{}{}
	return nil
}

// AddParent asserts a parent→child edge. parent == child is accepted;
// the base relation carries no self-exclusion guard.
func (s *Store) AddParent(ctx context.Context, parent, child facts.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.parents[child] == nil {
		s.parents[child] = make(map[facts.Person]struct{})
	}
	s.parents[child][parent] = struct{}{}
	if s.children[parent] == nil {
		s.children[parent] = make(map[facts.Person]struct{})
	}
	s.children[parent][child] = struct{}{}
	return nil
}

// RemoveMale retracts a male fact. Removing an absent fact is a no-op.
func (s *Store) RemoveMale(ctx context.Context, p facts.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.male, p)
	return nil
}

// RemoveFemale retracts a female fact.
func (s *Store) RemoveFemale(ctx context.Context, p facts.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.female, p)
	return nil
}

// RemoveParent retracts a parent→child edge.
func (s *Store) RemoveParent(ctx context.Context, parent, child facts.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m := s.parents[child]; m != nil {
		delete(m, parent)
		if len(m) == 0 {
			delete(s.parents, child)
		}
	}
	if m := s.children[parent]; m != nil {
		delete(m, child)
		if len(m) == 0 {
			delete(s.children, parent)
		}
	}
	return nil
}

// IsMale reports whether p has been asserted male.
func (s *Store) IsMale(p facts.Person) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.male[p]
	return ok
}

// IsFemale reports whether p has been asserted female.
func (s *Store) IsFemale(p facts.Person) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.female[p]
	return ok
}

// ParentsOf returns the asserted parents of child, sorted.
func (s *Store) ParentsOf(child facts.Person) []facts.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.parents[child])
}

// ChildrenOf returns the asserted children of parent, sorted.
func (s *Store) ChildrenOf(parent facts.Person) []facts.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.children[parent])
}

// Persons returns every person mentioned in any base fact, sorted.
func (s *Store) Persons() []facts.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[facts.Person]struct{})
	for p := range s.male {
		seen[p] = struct{}{}
	}
	for p := range s.female {
		seen[p] = struct{}{}
	}
	for child, parents := range s.parents {
		seen[child] = struct{}{}
		for parent := range parents {
			seen[parent] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// ParentEdges returns every parent→child edge, sorted by parent then child.
func (s *Store) ParentEdges() []facts.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var edges []facts.Edge
	for child, parents := range s.parents {
		for parent := range parents {
			edges = append(edges, facts.Edge{Parent: parent, Child: child})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Parent != edges[j].Parent {
			return edges[i].Parent < edges[j].Parent
		}
		return edges[i].Child < edges[j].Child
	})
	return edges
}

func sortedKeys(m map[facts.Person]struct{}) []facts.Person {
	out := make([]facts.Person, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
