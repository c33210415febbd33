// Package enginetest is a conformance suite run against every
// inference.Engine implementation. It encodes the invariants both the
// native and the Datalog engine must uphold.
package enginetest

import (
	"context"
	"testing"

	"github.com/famlogic/kin/pkg/kin/facts/memstore"
	"github.com/famlogic/kin/pkg/kin/inference"
	"github.com/famlogic/kin/pkg/kin/relations"
)

// Run exercises the full conformance suite against the engine returned
// by newEngine. A fresh engine is created per subtest.
func Run(t *testing.T, newEngine func(t *testing.T) inference.Engine) {
	t.Run("MotherFatherSon", func(t *testing.T) {
		e := newEngine(t)
		ctx := context.Background()
		s := memstore.New()
		s.AddParent(ctx, "alice", "bob")
		s.AddMale(ctx, "bob")
		s.AddFemale(ctx, "alice")

		if !e.Holds(s, relations.KindMother, "alice", "bob") {
			t.Error("mother(alice, bob) should hold")
		}
		if e.Holds(s, relations.KindFather, "alice", "bob") {
			t.Error("father(alice, bob) should not hold")
		}
		if !e.Holds(s, relations.KindSon, "bob", "alice") {
			t.Error("son(bob, alice) should hold")
		}
	})

	t.Run("GrandparentSexUnknown", func(t *testing.T) {
		e := newEngine(t)
		ctx := context.Background()
		s := memstore.New()
		s.AddParent(ctx, "a", "b")
		s.AddParent(ctx, "b", "c")

		if !e.Holds(s, relations.KindGrandparent, "a", "c") {
			t.Error("grandparent(a, c) should hold")
		}
		if e.Holds(s, relations.KindGrandmother, "a", "c") {
			t.Error("grandmother(a, c) should not hold with sex unknown")
		}
		if e.Holds(s, relations.KindGrandfather, "a", "c") {
			t.Error("grandfather(a, c) should not hold with sex unknown")
		}
	})

	t.Run("UncleScenario", func(t *testing.T) {
		e := newEngine(t)
		ctx := context.Background()
		s := memstore.New()
		s.AddParent(ctx, "gp", "p1")
		s.AddParent(ctx, "gp", "p2")
		s.AddParent(ctx, "p2", "n")
		s.AddMale(ctx, "p1")

		if !e.Holds(s, relations.KindPibling, "p1", "n") {
			t.Error("pibling(p1, n) should hold")
		}
		if !e.Holds(s, relations.KindUncle, "p1", "n") {
			t.Error("uncle(p1, n) should hold")
		}
		if e.Holds(s, relations.KindNephew, "n", "p1") {
			t.Error("nephew(n, p1) requires n to be male")
		}
		s.AddMale(ctx, "n")
		if !e.Holds(s, relations.KindNephew, "n", "p1") {
			t.Error("nephew(n, p1) should hold once n is male")
		}
	})

	t.Run("SelfExclusion", func(t *testing.T) {
		e := newEngine(t)
		ctx := context.Background()
		s := memstore.New()
		s.AddParent(ctx, "x", "x")
		s.AddParent(ctx, "x", "y")
		s.AddParent(ctx, "gp", "x")
		s.AddMale(ctx, "x")
		s.AddFemale(ctx, "x")

		for _, p := range s.Persons() {
			for _, kind := range relations.DerivedKinds() {
				// child is an unguarded inverse primitive and mirrors
				// parent(x, x) exactly; everything else must guard.
				if kind == relations.KindChild {
					continue
				}
				if e.Holds(s, kind, p, p) {
					t.Errorf("%s(%s, %s) must never hold", kind, p, p)
				}
			}
			if e.Related(s, p, p) {
				t.Errorf("related(%s, %s) must never hold", p, p)
			}
		}
		// The base parent relation stays unguarded, and its inverse
		// mirrors it.
		if !e.Holds(s, relations.KindParent, "x", "x") {
			t.Error("parent(x, x) is an asserted base fact and should hold")
		}
		if !e.Holds(s, relations.KindChild, "x", "x") {
			t.Error("child(x, x) must mirror the asserted parent(x, x)")
		}
	})

	t.Run("InverseSymmetry", func(t *testing.T) {
		e := newEngine(t)
		ctx := context.Background()
		s := memstore.New()
		s.AddParent(ctx, "gp", "p1")
		s.AddParent(ctx, "gp", "p2")
		s.AddParent(ctx, "p1", "x")
		s.AddParent(ctx, "p2", "n")

		pairs := []struct{ fwd, inv relations.Kind }{
			{relations.KindParent, relations.KindChild},
			{relations.KindGrandparent, relations.KindGrandchild},
			{relations.KindPibling, relations.KindNibling},
		}
		for _, pair := range pairs {
			for _, a := range s.Persons() {
				for _, b := range s.Persons() {
					if e.Holds(s, pair.fwd, a, b) != e.Holds(s, pair.inv, b, a) {
						t.Errorf("%s(%s, %s) and %s(%s, %s) must mirror",
							pair.fwd, a, b, pair.inv, b, a)
					}
				}
			}
		}
	})

	t.Run("HalfSiblings", func(t *testing.T) {
		e := newEngine(t)
		ctx := context.Background()
		s := memstore.New()
		s.AddParent(ctx, "p1", "x")
		s.AddParent(ctx, "p2", "x")
		s.AddParent(ctx, "p1", "y")

		if !e.Holds(s, relations.KindSibling, "x", "y") {
			t.Error("half-siblings must count as siblings")
		}
	})

	t.Run("KindsBetweenIdempotent", func(t *testing.T) {
		e := newEngine(t)
		ctx := context.Background()
		s := memstore.New()
		s.AddParent(ctx, "p", "x")
		s.AddParent(ctx, "p", "y")
		s.AddMale(ctx, "x")

		first := e.KindsBetween(s, "x", "y")
		second := e.KindsBetween(s, "x", "y")
		if len(first) != 2 || first[0] != relations.KindSibling || first[1] != relations.KindBrother {
			t.Errorf("KindsBetween(x, y) = %v, want [sibling brother]", first)
		}
		if len(second) != len(first) {
			t.Errorf("re-query differs: %v then %v", first, second)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("re-query differs at %d: %v then %v", i, first, second)
			}
		}
	})

	t.Run("AllFactsDeterministicAndDeduplicated", func(t *testing.T) {
		e := newEngine(t)
		ctx := context.Background()
		s := memstore.New()
		s.AddParent(ctx, "p1", "x")
		s.AddParent(ctx, "p2", "x")
		s.AddParent(ctx, "p1", "y")
		s.AddParent(ctx, "p2", "y")

		first := e.AllFacts(s)
		second := e.AllFacts(s)
		if len(first) != len(second) {
			t.Fatalf("enumeration size differs: %d then %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("enumeration differs at %d: %v then %v", i, first[i], second[i])
			}
		}

		seen := make(map[relations.DerivedFact]int)
		for _, f := range first {
			seen[f]++
			if seen[f] > 1 {
				t.Errorf("fact %v enumerated more than once", f)
			}
		}
		if seen[relations.DerivedFact{Kind: relations.KindSibling, A: "x", B: "y"}] != 1 {
			t.Error("sibling(x, y) must be enumerated exactly once despite two shared parents")
		}
	})

	t.Run("RetractionVisible", func(t *testing.T) {
		e := newEngine(t)
		ctx := context.Background()
		s := memstore.New()
		s.AddParent(ctx, "alice", "bob")
		s.AddFemale(ctx, "alice")

		if !e.Holds(s, relations.KindMother, "alice", "bob") {
			t.Fatal("mother(alice, bob) should hold before retraction")
		}
		s.RemoveParent(ctx, "alice", "bob")
		if e.Holds(s, relations.KindMother, "alice", "bob") {
			t.Error("mother(alice, bob) should not survive retraction")
		}
	})

	t.Run("UnknownPersonsAndKinds", func(t *testing.T) {
		e := newEngine(t)
		s := memstore.New()

		if e.Holds(s, relations.KindFather, "ghost", "phantom") {
			t.Error("unknown persons must evaluate to false")
		}
		if e.Holds(s, "stepcousin", "a", "b") {
			t.Error("unknown kinds must evaluate to false")
		}
		if got := e.AllFacts(s); len(got) != 0 {
			t.Errorf("empty store must derive nothing, got %v", got)
		}
	})
}
